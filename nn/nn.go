// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/scalarnet/internal/nn"
)

// Graph

// Network is a layered feed-forward graph of scalar neurons.
type Network = nn.Network

// Layer is an ordered group of neurons of one kind.
type Layer = nn.Layer

// Neuron is either an input leaf or a computed node.
type Neuron = nn.Neuron

// Edge is a weighted connection from a previous-layer neuron.
type Edge = nn.Edge

// Kind tags a neuron's variant.
type Kind = nn.Kind

// Neuron kinds.
const (
	InputNeuron    = nn.InputNeuron
	ComputedNeuron = nn.ComputedNeuron
)

// Configuration

// Config describes topology and training configuration.
type Config = nn.Config

// Context carries the activation pair, learning rate and order through
// the forward and backward passes.
type Context = nn.Context

// Order selects which weight an edge forwards during backpropagation.
type Order = nn.Order

// Propagation orders.
const (
	PostUpdate = nn.PostUpdate
	PreUpdate  = nn.PreUpdate
)

// Defaults.
const (
	DefaultHiddenLayers = nn.DefaultHiddenLayers
	DefaultLearningRate = nn.DefaultLearningRate
)

// Construction errors.
var (
	ErrInputSize    = nn.ErrInputSize
	ErrOutputSize   = nn.ErrOutputSize
	ErrHiddenLayers = nn.ErrHiddenLayers
	ErrLearningRate = nn.ErrLearningRate
	ErrLayerIndex   = nn.ErrLayerIndex
	ErrShape        = nn.ErrShape
)

// New builds a network from cfg.
//
// Example:
//
//	cfg := nn.DefaultConfig(2, 1)
//	cfg.Initializer = nn.DefaultUniform(42)
//	net, err := nn.New(cfg)
func New(cfg Config) (*Network, error) {
	return nn.New(cfg)
}

// DefaultConfig returns one hidden layer, learning rate 0.5 and sigmoid.
func DefaultConfig(inputSize, outputSize int) Config {
	return nn.DefaultConfig(inputSize, outputSize)
}

// HiddenLayerSize returns min(2*in-1, ceil(2*in/3 + out)).
func HiddenLayerSize(inputSize, outputSize int) int {
	return nn.HiddenLayerSize(inputSize, outputSize)
}

// Activations

// Activation pairs an activation function with its derivative.
type Activation = nn.Activation

// ActivationFunc maps a weighted input sum to an output.
type ActivationFunc = nn.ActivationFunc

// Sigmoid returns the logistic activation and its derivative.
func Sigmoid() Activation {
	return nn.Sigmoid()
}

// Initialization

// Initializer produces initial edge weights.
type Initializer = nn.Initializer

// Uniform draws weights from a uniform distribution.
type Uniform = nn.Uniform

// Fixed replays a list of weights.
type Fixed = nn.Fixed

// NewUniform creates a U[lo, hi) initializer backed by src.
func NewUniform(lo, hi float64, src rand.Source) *Uniform {
	return nn.NewUniform(lo, hi, src)
}

// DefaultUniform returns U[-0.5, 0.5) seeded with seed (0 = time seeded).
func DefaultUniform(seed uint64) *Uniform {
	return nn.DefaultUniform(seed)
}

// NewFixed creates an initializer returning weights in order.
func NewFixed(weights ...float64) *Fixed {
	return nn.NewFixed(weights...)
}
