package cpu

import (
	"testing"

	"github.com/loom-ml/loom/internal/tensor"
)

func TestCPUBackend_MatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float32", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
		b := newFloat32(t, tensor.Shape{3, 2}, []float32{7, 8, 9, 10, 11, 12})

		result := backend.MatMul(a, b)

		if !result.Shape().Equal(tensor.Shape{2, 2}) {
			t.Fatalf("Expected shape {2,2}, got %v", result.Shape())
		}
		if result.DType() != tensor.Float32 {
			t.Fatalf("Expected Float32, got %s", result.DType())
		}
		if !float32SliceEqual(result.AsFloat32()[:4], []float32{58, 64, 139, 154}) {
			t.Errorf("MatMul failed: got %v", result.AsFloat32()[:4])
		}
	})

	t.Run("Float64", func(t *testing.T) {
		a, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, tensor.CPU)
		if err != nil {
			t.Fatalf("NewRaw failed: %v", err)
		}
		copy(a.AsFloat64(), []float64{1, 2, 3, 4})

		result := backend.MatMul(a, a)

		got := result.AsFloat64()[:4]
		for i, want := range []float64{7, 10, 15, 22} {
			if got[i] != want {
				t.Errorf("Element %d: got %v, expected %v", i, got[i], want)
			}
		}
	})

	t.Run("Int64", func(t *testing.T) {
		a := newInt64(t, tensor.Shape{2, 2}, []int64{1, 2, 3, 4})
		b := newInt64(t, tensor.Shape{2, 2}, []int64{5, 6, 7, 8})

		result := backend.MatMul(a, b)

		if result.DType() != tensor.Int64 {
			t.Fatalf("Expected Int64, got %s", result.DType())
		}
		got := result.AsInt64()[:4]
		for i, want := range []int64{19, 22, 43, 50} {
			if got[i] != want {
				t.Errorf("Element %d: got %d, expected %d", i, got[i], want)
			}
		}
	})

	t.Run("Int64TransposeView", func(t *testing.T) {
		a := newInt64(t, tensor.Shape{2, 2}, []int64{1, 2, 3, 4})
		at, err := a.TransposeView()
		if err != nil {
			t.Fatalf("TransposeView failed: %v", err)
		}
		eye := newInt64(t, tensor.Shape{2, 2}, []int64{1, 0, 0, 1})

		result := backend.MatMul(at, eye)

		got := result.AsInt64()[:4]
		// Aᵀ = {{1,3},{2,4}}.
		for i, want := range []int64{1, 3, 2, 4} {
			if got[i] != want {
				t.Errorf("Element %d: got %d, expected %d", i, got[i], want)
			}
		}
	})

	t.Run("ShapeMismatchPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on inner-dimension mismatch")
			}
		}()
		a := newFloat32(t, tensor.Shape{2, 3}, make([]float32, 6))
		b := newFloat32(t, tensor.Shape{2, 2}, make([]float32, 4))
		backend.MatMul(a, b)
	})
}
