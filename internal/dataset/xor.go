// Package dataset holds the fixed truth tables used to exercise the engine.
package dataset

import "github.com/born-ml/scalarnet/internal/train"

// XOR returns the four-row exclusive-or truth table.
// Every call returns a fresh copy.
func XOR() train.Dataset {
	return train.Dataset{
		{Input: []float64{0, 0}, Expected: []float64{0}},
		{Input: []float64{0, 1}, Expected: []float64{1}},
		{Input: []float64{1, 0}, Expected: []float64{1}},
		{Input: []float64{1, 1}, Expected: []float64{0}},
	}
}

// Inputs returns the input vectors of ds in order.
func Inputs(ds train.Dataset) [][]float64 {
	out := make([][]float64, len(ds))
	for i, ex := range ds {
		out[i] = ex.Input
	}
	return out
}
