package nn

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer produces initial edge weights, one per call.
//
// Network construction calls Next layer by layer, neuron by neuron and
// edge by edge, so a deterministic Initializer yields a reproducible graph.
type Initializer interface {
	Next() float64
}

// Uniform draws weights from U[lo, hi).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform creates a uniform initializer over [lo, hi) backed by src.
// A nil src is replaced by a time-seeded source.
func NewUniform(lo, hi float64, src rand.Source) *Uniform {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Uniform{dist: distuv.Uniform{Min: lo, Max: hi, Src: src}}
}

// DefaultUniform returns U[-0.5, 0.5) seeded with seed.
// A zero seed selects a time-based seed.
func DefaultUniform(seed uint64) *Uniform {
	if seed == 0 {
		return NewUniform(-0.5, 0.5, nil)
	}
	return NewUniform(-0.5, 0.5, rand.NewSource(seed))
}

// Next returns the next weight.
func (u *Uniform) Next() float64 {
	return u.dist.Rand()
}

// Fixed replays a list of weights, starting over when exhausted.
type Fixed struct {
	weights []float64
	pos     int
}

// NewFixed creates an initializer that returns weights in order.
// With no weights every call returns 0.
func NewFixed(weights ...float64) *Fixed {
	return &Fixed{weights: weights}
}

// Next returns the next weight of the list.
func (f *Fixed) Next() float64 {
	if len(f.weights) == 0 {
		return 0
	}
	w := f.weights[f.pos%len(f.weights)]
	f.pos++
	return w
}
