package nn

import "math"

// ActivationFunc maps a neuron's weighted input sum to its output.
type ActivationFunc func(float64) float64

// Activation pairs an activation function with its analytic derivative.
//
// The derivative is evaluated at the input sum, not at the activated value.
//
// Example:
//
//	relu := nn.Activation{
//	    Name:       "relu",
//	    Fn:         func(x float64) float64 { return math.Max(0, x) },
//	    Derivative: func(x float64) float64 { if x > 0 { return 1 }; return 0 },
//	}
type Activation struct {
	Name       string
	Fn         ActivationFunc
	Derivative ActivationFunc
}

// valid reports whether both functions are set.
func (a Activation) valid() bool {
	return a.Fn != nil && a.Derivative != nil
}

// Sigmoid returns the logistic activation σ(x) = 1 / (1 + exp(-x))
// with derivative σ(x)(1 - σ(x)).
func Sigmoid() Activation {
	return Activation{
		Name:       "sigmoid",
		Fn:         sigmoid,
		Derivative: sigmoidDerivative,
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func sigmoidDerivative(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}
