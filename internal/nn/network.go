package nn

import (
	"errors"
	"fmt"
	"math"
)

// Defaults applied by DefaultConfig and by New for zero-valued fields.
const (
	DefaultHiddenLayers = 1
	DefaultLearningRate = 0.5
)

// Construction errors.
var (
	ErrInputSize    = errors.New("nn: input size must be positive")
	ErrOutputSize   = errors.New("nn: output size must be positive")
	ErrHiddenLayers = errors.New("nn: hidden layer count must not be negative")
	ErrLearningRate = errors.New("nn: learning rate must be positive")
	ErrLayerIndex   = errors.New("nn: layer index out of range")
	ErrShape        = errors.New("nn: weight matrix shape mismatch")
)

// Config describes the topology and training configuration of a Network.
type Config struct {
	InputSize    int         // Neurons in the input layer
	OutputSize   int         // Neurons in the output layer
	HiddenLayers int         // Hidden layer count (0 is valid)
	LearningRate float64     // Default: 0.5
	Activation   Activation  // Default: Sigmoid
	Initializer  Initializer // Default: U[-0.5, 0.5), time seeded
	Order        Order       // Default: PostUpdate
}

// DefaultConfig returns a configuration with one hidden layer, learning
// rate 0.5 and sigmoid activation.
func DefaultConfig(inputSize, outputSize int) Config {
	return Config{
		InputSize:    inputSize,
		OutputSize:   outputSize,
		HiddenLayers: DefaultHiddenLayers,
		LearningRate: DefaultLearningRate,
		Activation:   Sigmoid(),
	}
}

// HiddenLayerSize returns the width shared by every hidden layer:
// min(2*in - 1, ceil(2*in/3 + out)).
func HiddenLayerSize(inputSize, outputSize int) int {
	a := 2*inputSize - 1
	b := int(math.Ceil(float64(inputSize*2)/3 + float64(outputSize)))
	return min(a, b)
}

// Network is a strictly layered feed-forward graph of scalar neurons.
//
// Layer 0 holds input neurons; every later layer holds computed neurons
// fully connected to the layer before it. The topology is fixed by New.
// After construction only input scalars and edge weights change.
//
// Network is not safe for concurrent use.
type Network struct {
	layers []Layer
	ctx    Context
}

// New builds a network from cfg.
//
// Layers are input, cfg.HiddenLayers hidden layers of HiddenLayerSize
// neurons, then output. Weights are drawn from cfg.Initializer.
func New(cfg Config) (*Network, error) {
	if cfg.InputSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInputSize, cfg.InputSize)
	}
	if cfg.OutputSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOutputSize, cfg.OutputSize)
	}
	if cfg.HiddenLayers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrHiddenLayers, cfg.HiddenLayers)
	}
	if cfg.LearningRate < 0 || math.IsNaN(cfg.LearningRate) {
		return nil, fmt.Errorf("%w: got %v", ErrLearningRate, cfg.LearningRate)
	}

	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}
	if !cfg.Activation.valid() {
		cfg.Activation = Sigmoid()
	}
	if cfg.Initializer == nil {
		cfg.Initializer = DefaultUniform(0)
	}

	layers := make([]Layer, 0, cfg.HiddenLayers+2)
	layers = append(layers, newInputLayer(cfg.InputSize))

	hidden := HiddenLayerSize(cfg.InputSize, cfg.OutputSize)
	for range cfg.HiddenLayers {
		prev := layers[len(layers)-1].Len()
		layers = append(layers, newComputedLayer(hidden, prev, cfg.Initializer))
	}

	prev := layers[len(layers)-1].Len()
	layers = append(layers, newComputedLayer(cfg.OutputSize, prev, cfg.Initializer))

	return &Network{
		layers: layers,
		ctx: Context{
			Activation:   cfg.Activation,
			LearningRate: cfg.LearningRate,
			Order:        cfg.Order,
		},
	}, nil
}

// Context returns the training configuration threaded through the graph.
func (n *Network) Context() Context {
	return n.ctx
}

// LearningRate returns the learning rate.
func (n *Network) LearningRate() float64 {
	return n.ctx.LearningRate
}

// Activation returns the activation pair.
func (n *Network) Activation() Activation {
	return n.ctx.Activation
}

// NumLayers returns the layer count, input and output included.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Layer returns the i-th layer. It panics if i is out of range.
func (n *Network) Layer(i int) *Layer {
	return &n.layers[i]
}

// OutputLayer returns the last layer.
func (n *Network) OutputLayer() *Layer {
	return &n.layers[len(n.layers)-1]
}

// Sizes returns the neuron count of every layer.
func (n *Network) Sizes() []int {
	sizes := make([]int, len(n.layers))
	for i := range n.layers {
		sizes[i] = n.layers[i].Len()
	}
	return sizes
}

// SetInput assigns the input layer. See Layer.SetInput for ignored cases.
func (n *Network) SetInput(values []float64) {
	n.layers[0].SetInput(values)
}

// Prediction evaluates every output neuron in order.
// Each call runs a full forward pass.
func (n *Network) Prediction() []float64 {
	last := len(n.layers) - 1
	out := make([]float64, n.layers[last].Len())
	for i := range out {
		out[i] = value(n.layers, &n.ctx, last, i)
	}
	return out
}

// Value returns the output of neuron index in layer.
//
// Computed neurons are re-evaluated recursively down to the input layer on
// every call; nothing is cached.
func (n *Network) Value(layer, index int) float64 {
	return value(n.layers, &n.ctx, layer, index)
}

// InputSum returns Σ weight*source for a computed neuron, 0 for inputs.
func (n *Network) InputSum(layer, index int) float64 {
	return inputSum(n.layers, &n.ctx, layer, index)
}

// PropagateError pushes err into neuron index of layer, updating every
// upstream edge weight on the way. It is a no-op on input neurons.
func (n *Network) PropagateError(layer, index int, err float64) {
	propagateError(n.layers, &n.ctx, layer, index, err)
}

func value(layers []Layer, ctx *Context, l, i int) float64 {
	nr := &layers[l].neurons[i]
	if nr.kind == InputNeuron {
		return nr.value
	}
	return ctx.Activation.Fn(inputSum(layers, ctx, l, i))
}

func inputSum(layers []Layer, ctx *Context, l, i int) float64 {
	nr := &layers[l].neurons[i]
	if nr.kind == InputNeuron {
		return 0
	}
	var sum float64
	for _, e := range nr.edges {
		sum += e.Weight * value(layers, ctx, l-1, e.Source)
	}
	return sum
}

// propagateError adjusts the edges of neuron (l, i) in construction order.
// Each edge is updated before its source receives its share of the error,
// so later edges see upstream weights already changed by earlier ones.
func propagateError(layers []Layer, ctx *Context, l, i int, err float64) {
	nr := &layers[l].neurons[i]
	if nr.kind == InputNeuron {
		return
	}

	delta := err * ctx.Activation.Derivative(inputSum(layers, ctx, l, i))

	for k := range nr.edges {
		e := &nr.edges[k]
		old := e.Weight
		e.Weight -= value(layers, ctx, l-1, e.Source) * delta * ctx.LearningRate

		sent := e.Weight
		if ctx.Order == PreUpdate {
			sent = old
		}
		propagateError(layers, ctx, l-1, e.Source, sent*delta)
	}
}
