package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputLayerSetInput(t *testing.T) {
	l := newInputLayer(3)
	assert.True(t, l.IsFirstLayer())
	assert.Equal(t, 3, l.Len())

	l.SetInput([]float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, l.Inputs())

	l.SetInput([]float64{4, 5})
	assert.Equal(t, []float64{1, 2, 3}, l.Inputs())
}

func TestComputedLayerWiring(t *testing.T) {
	l := newComputedLayer(2, 3, NewFixed(1, 2, 3, 4, 5, 6))
	assert.False(t, l.IsFirstLayer())

	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, l.Neuron(0).Edges())
	assert.Equal(t, []Edge{{0, 4}, {1, 5}, {2, 6}}, l.Neuron(1).Edges())

	l.SetInput([]float64{7, 8})
	assert.Equal(t, []float64{0, 0}, l.Inputs())
}

func TestNeuronVariants(t *testing.T) {
	in := NewInput(2.5)
	assert.True(t, in.IsInput())
	assert.Equal(t, InputNeuron, in.Kind())
	assert.Nil(t, in.Edges())
	in.SetInput(3)
	assert.Equal(t, 3.0, in.Input())

	c := NewComputed([]Edge{{Source: 0, Weight: 1}})
	assert.False(t, c.IsInput())
	c.SetInput(3)
	assert.Equal(t, 0.0, c.Input())
	assert.Len(t, c.Edges(), 1)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "input", InputNeuron.String())
	assert.Equal(t, "computed", ComputedNeuron.String())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.Equal(t, "post-update", PostUpdate.String())
	assert.Equal(t, "pre-update", PreUpdate.String())
}
