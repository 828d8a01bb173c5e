// Package train drives online training of an nn.Network.
//
// Training is strictly online: every example adjusts the weights before
// the next one is evaluated. There is no batching, shuffling or early
// stopping; the epoch count is the only termination control.
//
// Example usage:
//
//	net, _ := nn.New(nn.DefaultConfig(2, 1))
//	train.Train(net, dataset.XOR(), train.Config{Epochs: 100000})
//
//	net.SetInput([]float64{1, 0})
//	fmt.Println(net.Prediction())
package train

import (
	"github.com/born-ml/scalarnet/internal/nn"
)

// DefaultEpochs is the epoch count used when Config.Epochs is zero.
const DefaultEpochs = 100000

// Example is one input vector and the output expected for it.
type Example struct {
	Input    []float64
	Expected []float64
}

// Dataset is an ordered list of examples.
type Dataset []Example

// Config controls a training run.
type Config struct {
	Epochs  int             // Default: 100000. Negative means no epochs.
	OnEpoch func(epoch int) // Called after each epoch with its 1-based index
}

// TrainOnce runs one epoch over ds.
//
// For each example in order the input layer is set, a prediction is read
// and the raw difference prediction[i]-expected[i] is pushed into output
// neuron i. A nil dataset is ignored, as are examples whose Expected
// length does not match the output layer.
func TrainOnce(net *nn.Network, ds Dataset) {
	if ds == nil {
		return
	}
	last := net.NumLayers() - 1
	width := net.OutputLayer().Len()

	for _, ex := range ds {
		if len(ex.Expected) != width {
			continue
		}
		net.SetInput(ex.Input)
		prediction := net.Prediction()
		for i, p := range prediction {
			net.PropagateError(last, i, p-ex.Expected[i])
		}
	}
}

// Train runs TrainOnce cfg.Epochs times in order and returns when all
// epochs have completed.
func Train(net *nn.Network, ds Dataset, cfg Config) {
	epochs := cfg.Epochs
	if epochs == 0 {
		epochs = DefaultEpochs
	}
	for epoch := 1; epoch <= epochs; epoch++ {
		TrainOnce(net, ds)
		if cfg.OnEpoch != nil {
			cfg.OnEpoch(epoch)
		}
	}
}

// TrainAsync runs Train on its own goroutine. The returned channel is
// closed once every epoch has run.
//
// The network must not be used by anyone else until the channel is closed.
func TrainAsync(net *nn.Network, ds Dataset, cfg Config) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Train(net, ds, cfg)
	}()
	return done
}
