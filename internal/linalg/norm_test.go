package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestNormOrders(t *testing.T) {
	a := matrix(t, [][]float64{{1, -2}, {3, 4}})

	cases := []struct {
		name  string
		order byte
		want  float64
	}{
		{"frobenius", NormFrobenius, math.Sqrt(30)},
		{"default", 0, math.Sqrt(30)},
		{"inf", NormInf, 7},
		{"one", NormOne, 6},
		{"maxabs", NormMaxAbs, 4},
		{"lower-f", 'f', math.Sqrt(30)},
		{"numpy-o", 'o', 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Norm(a, tc.order)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestNormRectangular(t *testing.T) {
	a := matrix(t, [][]float64{{1, 2, 3}, {-4, 5, -6}})

	got, err := Norm(a, NormInf)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, 1e-12)

	got, err = Norm(a, NormOne)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, 1e-12)
}

func TestNormEmpty(t *testing.T) {
	for _, shape := range []tensor.Shape{{0, 0}, {3, 0}} {
		empty, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
		require.NoError(t, err)
		for _, order := range []byte{NormFrobenius, NormInf, NormOne, NormMaxAbs} {
			got, err := Norm(empty, order)
			require.NoError(t, err)
			assert.Equal(t, 0.0, got, "shape %v order %q", shape, order)
		}
	}
}

func TestNormUnknownOrder(t *testing.T) {
	a := matrix(t, [][]float64{{1, 2}, {3, 4}})
	_, err := Norm(a, 'x')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order")
}

func TestNormNotAMatrix(t *testing.T) {
	_, err := Norm(vector(t, []float64{1, 2, 3}), NormFrobenius)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotAMatrix}))
}
