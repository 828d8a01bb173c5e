package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalarnet/internal/nn"
)

// MeanSquaredError returns mean((prediction - expected)²) over every
// output of every usable example in ds. It runs one forward pass per
// example and leaves the network input set to the last one.
//
// Examples whose Input or Expected length does not match the network are
// skipped. It returns 0 when no example is usable.
func MeanSquaredError(net *nn.Network, ds Dataset) float64 {
	inWidth := net.Layer(0).Len()
	outWidth := net.OutputLayer().Len()

	var sum float64
	var count int
	diff := make([]float64, outWidth)
	for _, ex := range ds {
		if len(ex.Input) != inWidth || len(ex.Expected) != outWidth {
			continue
		}
		net.SetInput(ex.Input)
		floats.SubTo(diff, net.Prediction(), ex.Expected)
		sum += floats.Dot(diff, diff)
		count += outWidth
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Predict sets each input in turn and collects the predictions.
func Predict(net *nn.Network, inputs [][]float64) [][]float64 {
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		net.SetInput(in)
		out[i] = net.Prediction()
	}
	return out
}
