package linalg

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestEigvalshAscending(t *testing.T) {
	a := matrix(t, [][]float64{{2, 1}, {1, 2}})

	w, err := Eigvalsh(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2}, w.Shape())

	wd := w.AsFloat64()[:2]
	assert.InDelta(t, 1.0, wd[0], 1e-12)
	assert.InDelta(t, 3.0, wd[1], 1e-12)
}

func TestEighVectors(t *testing.T) {
	a := matrix(t, [][]float64{{2, 1}, {1, 2}})

	w, v, err := Eigh(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, v.Shape())

	wd := w.AsFloat64()[:2]
	vd := v.AsFloat64()[:4]

	// A·v_i = λ_i·v_i for each column i.
	for i := 0; i < 2; i++ {
		col := []float64{vd[0*2+i], vd[1*2+i]}
		av := mulRef([]float64{2, 1, 1, 2}, 2, 2, col, 1)
		for r := 0; r < 2; r++ {
			assert.InDelta(t, wd[i]*col[r], av[r], 1e-12, "column %d row %d", i, r)
		}
	}

	// Orthonormal basis.
	gram := mulRef(transposeRef(vd, 2, 2), 2, 2, vd, 2)
	for i, want := range []float64{1, 0, 0, 1} {
		assert.InDelta(t, want, gram[i], 1e-12, "VᵀV element %d", i)
	}
}

func TestEighDoesNotMutate(t *testing.T) {
	a := matrix(t, [][]float64{{2, 1}, {1, 2}})
	_, _, err := Eigh(a)
	require.NoError(t, err)
	assertMatrix(t, []float64{2, 1, 1, 2}, a, 0)
}

func TestEigvalsComplexPair(t *testing.T) {
	// Rotation-like matrix with eigenvalues ±i.
	a := matrix(t, [][]float64{{0, 1}, {-1, 0}})

	w, err := Eigvals(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Complex128, w.DType())
	require.Equal(t, tensor.Shape{2}, w.Shape())

	wd := append([]complex128(nil), w.AsComplex128()[:2]...)
	sort.Slice(wd, func(i, j int) bool { return imag(wd[i]) < imag(wd[j]) })
	assert.InDelta(t, 0.0, real(wd[0]), 1e-12)
	assert.InDelta(t, -1.0, imag(wd[0]), 1e-12)
	assert.InDelta(t, 0.0, real(wd[1]), 1e-12)
	assert.InDelta(t, 1.0, imag(wd[1]), 1e-12)
}

func TestEigRealVectors(t *testing.T) {
	// Diagonalizable with real spectrum {1, 3}.
	a := matrix(t, [][]float64{{2, 1}, {1, 2}})

	w, v, err := Eig(a)
	require.NoError(t, err)
	require.Equal(t, tensor.Complex128, w.DType())
	require.Equal(t, tensor.Shape{2, 2}, v.Shape())

	wd := append([]complex128(nil), w.AsComplex128()[:2]...)
	sort.Slice(wd, func(i, j int) bool { return real(wd[i]) < real(wd[j]) })
	assert.InDelta(t, 1.0, real(wd[0]), 1e-12)
	assert.InDelta(t, 0.0, imag(wd[0]), 1e-12)
	assert.InDelta(t, 3.0, real(wd[1]), 1e-12)
	assert.InDelta(t, 0.0, imag(wd[1]), 1e-12)

	// Left eigenvectors of a symmetric matrix: vᵀ·A = λ·vᵀ.
	vd := v.AsFloat64()[:4]
	we := w.AsComplex128()[:2]
	for i := 0; i < 2; i++ {
		col := []float64{vd[0*2+i], vd[1*2+i]}
		va := mulRef(col, 1, 2, []float64{2, 1, 1, 2}, 2)
		lambda := real(we[i])
		for c := 0; c < 2; c++ {
			assert.InDelta(t, lambda*col[c], va[c], 1e-12, "vector %d component %d", i, c)
		}
	}
}

func TestEigvalsFloat32(t *testing.T) {
	raw, err := tensor.AsTensor([][]float32{{0, 1}, {-1, 0}})
	require.NoError(t, err)

	w, err := Eigvals(raw)
	require.NoError(t, err)
	require.Equal(t, tensor.Complex64, w.DType())

	wd := w.AsComplex64()[:2]
	mags := []float64{
		math.Hypot(float64(real(wd[0])), float64(imag(wd[0]))),
		math.Hypot(float64(real(wd[1])), float64(imag(wd[1]))),
	}
	assert.InDelta(t, 1.0, mags[0], 1e-6)
	assert.InDelta(t, 1.0, mags[1], 1e-6)
}

func TestEigNotSquare(t *testing.T) {
	a := matrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, _, err := Eig(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotSquare}))

	_, err = Eigvals(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &tensor.ShapeError{Kind: tensor.NotSquare}))

	_, _, err = Eigh(a)
	require.Error(t, err)
	_, err = Eigvalsh(a)
	require.Error(t, err)
}
