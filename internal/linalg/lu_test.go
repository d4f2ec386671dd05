package linalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestDet(t *testing.T) {
	d, err := Det(matrix(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, d, 1e-12)

	d, err = Det(matrix(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)
}

func TestDetEmpty(t *testing.T) {
	empty, err := tensor.NewRaw(tensor.Shape{0, 0}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	// Empty product convention.
	d, err := Det(empty)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestDetPivoting(t *testing.T) {
	// A zero leading pivot forces a row interchange and a sign flip.
	d, err := Det(matrix(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d, 1e-12)
}

func TestDetSingular(t *testing.T) {
	_, err := Det(matrix(t, [][]float64{{1, 2}, {2, 4}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &NumericalError{Kind: SingularMatrix}))
	assert.True(t, errors.Is(err, &NumericalError{Kind: SingularMatrix, Op: "det"}))
}

func TestInv(t *testing.T) {
	a := matrix(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := Inv(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, inv.Shape())

	// A·A⁻¹ = I.
	prod := mulRef(a.AsFloat64()[:4], 2, 2, inv.AsFloat64()[:4], 2)
	for i, want := range []float64{1, 0, 0, 1} {
		assert.InDelta(t, want, prod[i], 1e-12, "element %d", i)
	}
	// Input untouched.
	assertMatrix(t, []float64{4, 7, 2, 6}, a, 0)
}

func TestInvSingular(t *testing.T) {
	_, err := Inv(matrix(t, [][]float64{{1, 2}, {2, 4}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &NumericalError{Kind: SingularMatrix}))
}

func TestSolveVector(t *testing.T) {
	a := matrix(t, [][]float64{{3, 1}, {1, 2}})
	b := vector(t, []float64{9, 8})

	x, err := Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2}, x.Shape())

	xd := x.AsFloat64()[:2]
	assert.InDelta(t, 2.0, xd[0], 1e-12)
	assert.InDelta(t, 3.0, xd[1], 1e-12)

	// Operands untouched.
	assertMatrix(t, []float64{3, 1, 1, 2}, a, 0)
	assert.Equal(t, []float64{9, 8}, b.AsFloat64()[:2])
}

func TestSolveMatrixRHS(t *testing.T) {
	a := matrix(t, [][]float64{{2, 0}, {0, 4}})
	b := matrix(t, [][]float64{{2, 4}, {4, 8}})

	x, err := Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, x.Shape())
	assertMatrix(t, []float64{1, 2, 1, 2}, x, 1e-12)
}

func TestSolveSingular(t *testing.T) {
	a := matrix(t, [][]float64{{1, 2}, {2, 4}})
	_, err := Solve(a, vector(t, []float64{1, 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &NumericalError{Kind: SingularMatrix}))
}

func TestSolveShapeErrors(t *testing.T) {
	a := matrix(t, [][]float64{{3, 1}, {1, 2}})

	// 3-element RHS against a 2x2 system.
	_, err := Solve(a, vector(t, []float64{1, 2, 3}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.DimensionMismatch}))

	// Rank-3 RHS is neither a vector nor a matrix.
	cube, err := tensor.NewRaw(tensor.Shape{2, 2, 2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	_, err = Solve(a, cube)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotAMatrix}))

	// Non-square system matrix.
	_, err = Solve(matrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), vector(t, []float64{1, 2}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotSquare}))
}

func TestSolveFloat32(t *testing.T) {
	a, err := tensor.AsTensor([][]float32{{2, 0}, {0, 2}})
	require.NoError(t, err)
	b, err := tensor.AsTensor([]float32{4, 6})
	require.NoError(t, err)

	x, err := Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, tensor.Float32, x.DType())
	xd := x.AsFloat32()[:2]
	assert.InDelta(t, 2.0, float64(xd[0]), 1e-6)
	assert.InDelta(t, 3.0, float64(xd[1]), 1e-6)
}
