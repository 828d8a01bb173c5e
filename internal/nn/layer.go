package nn

// Layer is an ordered, fixed-size group of neurons of a single kind.
type Layer struct {
	neurons []Neuron
}

func newInputLayer(size int) Layer {
	neurons := make([]Neuron, size)
	for i := range neurons {
		neurons[i] = NewInput(0)
	}
	return Layer{neurons: neurons}
}

// newComputedLayer wires size neurons to every neuron of a previous layer
// of width prev, drawing weights from init in neuron-major order.
func newComputedLayer(size, prev int, init Initializer) Layer {
	neurons := make([]Neuron, size)
	for i := range neurons {
		edges := make([]Edge, prev)
		for j := range edges {
			edges[j] = Edge{Source: j, Weight: init.Next()}
		}
		neurons[i] = NewComputed(edges)
	}
	return Layer{neurons: neurons}
}

// Len returns the number of neurons.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Neuron returns the i-th neuron. It panics if i is out of range.
func (l *Layer) Neuron(i int) *Neuron {
	return &l.neurons[i]
}

// Kind returns the kind shared by all neurons of the layer.
func (l *Layer) Kind() Kind {
	if len(l.neurons) == 0 {
		return InputNeuron
	}
	return l.neurons[0].kind
}

// IsFirstLayer reports whether the layer holds input neurons.
func (l *Layer) IsFirstLayer() bool {
	return l.Kind() == InputNeuron
}

// SetInput assigns values[i] to neuron i.
//
// The call is ignored when the layer is not an input layer, when values is
// nil, or when its length differs from the layer width.
func (l *Layer) SetInput(values []float64) {
	if !l.IsFirstLayer() {
		return
	}
	if values == nil || len(values) != len(l.neurons) {
		return
	}
	for i, v := range values {
		l.neurons[i].SetInput(v)
	}
}

// Inputs returns a copy of the scalars of an input layer.
func (l *Layer) Inputs() []float64 {
	out := make([]float64, len(l.neurons))
	for i := range l.neurons {
		out[i] = l.neurons[i].Input()
	}
	return out
}
