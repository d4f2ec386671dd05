package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/internal/tensor"
)

// matrix builds a row-major Float64 matrix from nested literals.
func matrix(t *testing.T, rows [][]float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.AsTensor(rows)
	require.NoError(t, err)
	return raw
}

// vector builds a rank-1 Float64 tensor.
func vector(t *testing.T, vals []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.AsTensor(vals)
	require.NoError(t, err)
	return raw
}

// assertMatrix compares a Float64 tensor's row-major data against
// expected values within a tolerance.
func assertMatrix(t *testing.T, expected []float64, got *tensor.RawTensor, tol float64) {
	t.Helper()
	require.Equal(t, tensor.Float64, got.DType())
	data := got.AsFloat64()
	require.Len(t, data[:got.NumElements()], len(expected))
	for i, want := range expected {
		assert.InDelta(t, want, data[i], tol, "element %d", i)
	}
}

// mulRef multiplies two matrices given as row-major slices, for
// checking kernel results against an independent computation.
func mulRef(a []float64, m, k int, b []float64, n int) []float64 {
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			out[i*n+j] = sum
		}
	}
	return out
}

// transposeRef transposes a row-major matrix slice.
func transposeRef(a []float64, m, n int) []float64 {
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[j*m+i] = a[i*n+j]
		}
	}
	return out
}
