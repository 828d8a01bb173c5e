package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Weight returns the weight of edge e of neuron i in layer l.
// It panics if any index is out of range.
func (n *Network) Weight(l, i, e int) float64 {
	return n.layers[l].neurons[i].edges[e].Weight
}

// SetWeight overwrites the weight of edge e of neuron i in layer l.
// It panics if any index is out of range.
func (n *Network) SetWeight(l, i, e int, w float64) {
	n.layers[l].neurons[i].edges[e].Weight = w
}

// WeightMatrix returns a copy of the weights feeding layer l as a
// len(layer l) x len(layer l-1) matrix, row i holding neuron i's edges.
// It returns nil for the input layer and for out of range indices.
func (n *Network) WeightMatrix(l int) *mat.Dense {
	if l <= 0 || l >= len(n.layers) {
		return nil
	}
	rows := n.layers[l].Len()
	cols := n.layers[l-1].Len()
	m := mat.NewDense(rows, cols, nil)
	for i := range rows {
		for k, e := range n.layers[l].neurons[i].edges {
			m.Set(i, k, e.Weight)
		}
	}
	return m
}

// SetWeightMatrix overwrites the weights feeding layer l from m, laid out
// as returned by WeightMatrix.
func (n *Network) SetWeightMatrix(l int, m mat.Matrix) error {
	if l <= 0 || l >= len(n.layers) {
		return fmt.Errorf("%w: %d not in [1, %d)", ErrLayerIndex, l, len(n.layers))
	}
	rows, cols := m.Dims()
	wantRows, wantCols := n.layers[l].Len(), n.layers[l-1].Len()
	if rows != wantRows || cols != wantCols {
		return fmt.Errorf("%w: layer %d wants %dx%d, got %dx%d", ErrShape, l, wantRows, wantCols, rows, cols)
	}
	for i := range rows {
		edges := n.layers[l].neurons[i].edges
		for k := range edges {
			edges[k].Weight = m.At(i, k)
		}
	}
	return nil
}

// Weights returns every weight matrix, index 0 being the one feeding
// layer 1.
func (n *Network) Weights() []*mat.Dense {
	out := make([]*mat.Dense, 0, len(n.layers)-1)
	for l := 1; l < len(n.layers); l++ {
		out = append(out, n.WeightMatrix(l))
	}
	return out
}
