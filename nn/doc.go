// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward network of scalar neurons.
//
// # Overview
//
// A Network is a strictly layered graph:
//   - Layer 0 holds input neurons, each a raw scalar
//   - Hidden and output layers hold computed neurons, each with one
//     weighted Edge per neuron of the previous layer
//   - Activation pairs the activation function with its derivative
//
// Neurons are addressed by (layer, index). Values of computed neurons are
// never cached: every read re-evaluates the upstream graph.
//
// # Basic Usage
//
//	net, err := nn.New(nn.DefaultConfig(2, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	net.SetInput([]float64{1, 0})
//	prediction := net.Prediction()
//
//	// Push an error into output neuron 0, updating weights upstream.
//	net.PropagateError(net.NumLayers()-1, 0, prediction[0]-1)
//
// # Topology
//
// New builds cfg.HiddenLayers hidden layers, all of width
// HiddenLayerSize(in, out) = min(2*in-1, ceil(2*in/3 + out)).
//
// # Initialization
//
// Weights come from an Initializer, called layer by layer, neuron by
// neuron, edge by edge:
//
//	cfg.Initializer = nn.DefaultUniform(42)         // U[-0.5, 0.5), seeded
//	cfg.Initializer = nn.NewFixed(0.1, -0.2, 0.3)  // replayed list
//
// # Error propagation order
//
// By default an edge is updated before its source receives weight*delta,
// so the upstream error uses the new weight (PostUpdate). Set
// cfg.Order = nn.PreUpdate for the textbook ordering.
//
// # Error handling
//
// Only construction and SetWeightMatrix return errors. Runtime operations
// called on the wrong neuron kind, or with an input vector of the wrong
// length, are silently ignored.
package nn
