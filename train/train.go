// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides online training for nn.Network.
//
// # Basic Usage
//
//	net, _ := nn.New(nn.DefaultConfig(2, 1))
//	ds := train.XOR()
//
//	train.Train(net, ds, train.Config{
//	    Epochs: 100000,
//	    OnEpoch: func(epoch int) {
//	        if epoch%10000 == 0 {
//	            log.Printf("epoch %d: mse %.6f", epoch, train.MeanSquaredError(net, ds))
//	        }
//	    },
//	})
//
// # Asynchronous runs
//
//	done := train.TrainAsync(net, ds, train.Config{})
//	<-done // do not touch net before this returns
package train

import (
	"github.com/born-ml/scalarnet/internal/dataset"
	"github.com/born-ml/scalarnet/internal/nn"
	"github.com/born-ml/scalarnet/internal/train"
)

// DefaultEpochs is used when Config.Epochs is zero.
const DefaultEpochs = train.DefaultEpochs

// Example is an input vector with its expected output.
type Example = train.Example

// Dataset is an ordered list of examples.
type Dataset = train.Dataset

// Config controls a training run.
type Config = train.Config

// TrainOnce runs one online epoch over ds.
func TrainOnce(net *nn.Network, ds Dataset) {
	train.TrainOnce(net, ds)
}

// Train runs cfg.Epochs epochs and returns when they are done.
func Train(net *nn.Network, ds Dataset, cfg Config) {
	train.Train(net, ds, cfg)
}

// TrainAsync runs Train on a goroutine; the channel closes on completion.
func TrainAsync(net *nn.Network, ds Dataset, cfg Config) <-chan struct{} {
	return train.TrainAsync(net, ds, cfg)
}

// MeanSquaredError returns the mean squared error of net over ds.
func MeanSquaredError(net *nn.Network, ds Dataset) float64 {
	return train.MeanSquaredError(net, ds)
}

// Predict returns the prediction for each input, in order.
func Predict(net *nn.Network, inputs [][]float64) [][]float64 {
	return train.Predict(net, inputs)
}

// XOR returns the exclusive-or truth table.
func XOR() Dataset {
	return dataset.XOR()
}
