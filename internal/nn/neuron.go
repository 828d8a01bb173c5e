package nn

// Kind tags the payload a Neuron carries.
type Kind uint8

const (
	// InputNeuron holds a raw scalar and has no edges.
	InputNeuron Kind = iota
	// ComputedNeuron holds one edge per neuron of the previous layer.
	ComputedNeuron
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case InputNeuron:
		return "input"
	case ComputedNeuron:
		return "computed"
	default:
		return "unknown"
	}
}

// Neuron is a node of the graph: either an input leaf or a computed node.
//
// Only the payload matching Kind is meaningful. Values of computed neurons
// are never stored; see Network.Value.
type Neuron struct {
	kind  Kind
	value float64
	edges []Edge
}

// NewInput creates an input neuron holding v.
func NewInput(v float64) Neuron {
	return Neuron{kind: InputNeuron, value: v}
}

// NewComputed creates a computed neuron over the given edges.
func NewComputed(edges []Edge) Neuron {
	return Neuron{kind: ComputedNeuron, edges: edges}
}

// Kind reports which variant n is.
func (n *Neuron) Kind() Kind {
	return n.kind
}

// IsInput reports whether n is an input leaf.
func (n *Neuron) IsInput() bool {
	return n.kind == InputNeuron
}

// Input returns the stored scalar of an input neuron, 0 for computed ones.
func (n *Neuron) Input() float64 {
	if n.kind != InputNeuron {
		return 0
	}
	return n.value
}

// SetInput overwrites the scalar of an input neuron.
// Calls on a computed neuron are ignored.
func (n *Neuron) SetInput(v float64) {
	if n.kind != InputNeuron {
		return
	}
	n.value = v
}

// Edges returns the incoming edges of a computed neuron, nil for inputs.
// The slice aliases the neuron's storage.
func (n *Neuron) Edges() []Edge {
	return n.edges
}
