package nn

// Edge is a weighted connection from a neuron in the previous layer.
//
// Source is the index of the upstream neuron within layer l-1, where l is
// the layer of the neuron owning the edge. The edge does not own its source.
type Edge struct {
	Source int
	Weight float64
}
