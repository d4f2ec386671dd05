package linalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestHessenbergStructure(t *testing.T) {
	a := matrix(t, [][]float64{
		{4, 1, 2, 3},
		{1, 3, 1, 2},
		{2, 1, 5, 1},
		{3, 2, 1, 4},
	})

	h, err := Hessenberg(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{4, 4}, h.Shape())

	hd := h.AsFloat64()[:16]
	for i := 0; i < 4; i++ {
		for j := 0; j < i-1; j++ {
			assert.Zero(t, hd[i*4+j], "row %d col %d below first sub-diagonal", i, j)
		}
	}

	// Similarity transforms preserve the trace.
	trace := hd[0] + hd[5] + hd[10] + hd[15]
	assert.InDelta(t, 16.0, trace, 1e-12)

	// Input untouched.
	assertMatrix(t, []float64{4, 1, 2, 3, 1, 3, 1, 2, 2, 1, 5, 1, 3, 2, 1, 4}, a, 0)
}

func TestHessenbergSmall(t *testing.T) {
	a := matrix(t, [][]float64{{7}})

	h, err := Hessenberg(a)
	require.NoError(t, err)
	assertMatrix(t, []float64{7}, h, 0)
	// A duplicate, not the input buffer.
	h.AsFloat64()[0] = 0
	assertMatrix(t, []float64{7}, a, 0)
}

func TestHessenbergAlreadyReduced(t *testing.T) {
	// A 2x2 is upper-Hessenberg by construction.
	a := matrix(t, [][]float64{{1, 2}, {3, 4}})

	h, err := Hessenberg(a)
	require.NoError(t, err)

	hd := h.AsFloat64()[:4]
	trace := hd[0] + hd[3]
	assert.InDelta(t, 5.0, trace, 1e-12)
}

func TestHessenbergNotSquare(t *testing.T) {
	_, err := Hessenberg(matrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotSquare}))
}
