package goneuron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeScenarios(t *testing.T) {
	yTrue := FromRows([][]float64{{1, 0}, {0, 1}})
	yPred := FromRows([][]float64{{0.9, 0.1}, {0.2, 0.8}})
	assert.InDelta(t, 0.164252033486018, CategoricalCrossEntropy(yTrue, yPred), 1e-12)

	assert.InDelta(t, 0.164252033486018, BinaryCrossEntropy(Vector(0, 1, 1, 0), Vector(0.1, 0.9, 0.8, 0.2)), 1e-12)

	a := Vector(1, 2, 3)
	assert.Equal(t, 0.0, MeanSquaredError(a, a.Clone()))
	assert.Equal(t, []float64{0, 0, 0}, MeanSquaredErrorDerivative(a, a.Clone()).Data())
}

func TestFacadeLossByName(t *testing.T) {
	l, err := LossByName("categorical_crossentropy")
	require.NoError(t, err)
	assert.Equal(t, CCE, l)

	_, ok := l.(BackwardInPlacer)
	assert.True(t, ok)
}

func TestFacadeNewTensor(t *testing.T) {
	x := NewTensor(Shape{2, 2}, []float64{1, 0, 0, 1})
	assert.Equal(t, 2, x.BatchSize())
	assert.Equal(t, x.Size(), BinaryCrossEntropyDerivative(x, Vector(0.5, 0.5, 0.5, 0.5)).Size())
}
