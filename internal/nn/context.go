package nn

// Order selects which weight an edge forwards during backpropagation.
type Order uint8

const (
	// PostUpdate sends updatedWeight*delta upstream: the edge is adjusted
	// first and the new weight scales the error passed to its source.
	PostUpdate Order = iota
	// PreUpdate sends originalWeight*delta upstream, as in textbook
	// backpropagation.
	PreUpdate
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case PostUpdate:
		return "post-update"
	case PreUpdate:
		return "pre-update"
	default:
		return "unknown"
	}
}

// Context carries the training configuration down the forward and
// backward recursions.
type Context struct {
	Activation   Activation
	LearningRate float64
	Order        Order
}
