package cpu

import (
	"testing"

	"github.com/loom-ml/loom/internal/tensor"
)

func boolSliceEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCPUBackend_Comparisons(t *testing.T) {
	backend := newTestBackend()
	a := newFloat32(t, tensor.Shape{4}, []float32{1, 2, 3, 4})
	b := newFloat32(t, tensor.Shape{4}, []float32{2, 2, 2, 2})

	cases := []struct {
		name     string
		fn       func(a, b *tensor.RawTensor) *tensor.RawTensor
		expected []bool
	}{
		{"Greater", backend.Greater, []bool{false, false, true, true}},
		{"Lower", backend.Lower, []bool{true, false, false, false}},
		{"GreaterEqual", backend.GreaterEqual, []bool{false, true, true, true}},
		{"LowerEqual", backend.LowerEqual, []bool{true, true, false, false}},
		{"Equal", backend.Equal, []bool{false, true, false, false}},
		{"NotEqual", backend.NotEqual, []bool{true, false, true, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.fn(a, b)
			if result.DType() != tensor.Bool {
				t.Fatalf("Expected Bool result, got %s", result.DType())
			}
			if !boolSliceEqual(result.AsBool()[:4], tc.expected) {
				t.Errorf("%s failed: got %v, expected %v", tc.name, result.AsBool()[:4], tc.expected)
			}
		})
	}
}

func TestCPUBackend_CompareBroadcast(t *testing.T) {
	backend := newTestBackend()
	a := newFloat32(t, tensor.Shape{2, 2}, []float32{1, 5, 3, 7})
	threshold := newFloat32(t, tensor.Shape{1}, []float32{4})

	result := backend.Greater(a, threshold)

	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("Expected shape {2,2}, got %v", result.Shape())
	}
	if !boolSliceEqual(result.AsBool()[:4], []bool{false, true, false, true}) {
		t.Errorf("Broadcast compare failed: got %v", result.AsBool()[:4])
	}
}

func TestCPUBackend_Logical(t *testing.T) {
	backend := newTestBackend()

	newBool := func(vals []bool) *tensor.RawTensor {
		raw, err := tensor.NewRaw(tensor.Shape{len(vals)}, tensor.Bool, tensor.CPU)
		if err != nil {
			t.Fatalf("NewRaw failed: %v", err)
		}
		copy(raw.AsBool(), vals)
		return raw
	}

	a := newBool([]bool{true, true, false, false})
	b := newBool([]bool{true, false, true, false})

	and := backend.And(a, b)
	if !boolSliceEqual(and.AsBool()[:4], []bool{true, false, false, false}) {
		t.Errorf("And failed: got %v", and.AsBool()[:4])
	}

	or := backend.Or(a, b)
	if !boolSliceEqual(or.AsBool()[:4], []bool{true, true, true, false}) {
		t.Errorf("Or failed: got %v", or.AsBool()[:4])
	}

	not := backend.Not(a)
	if !boolSliceEqual(not.AsBool()[:4], []bool{false, false, true, true}) {
		t.Errorf("Not failed: got %v", not.AsBool()[:4])
	}

	t.Run("NonBoolPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for non-Bool operand")
			}
		}()
		backend.And(a, newFloat32(t, tensor.Shape{4}, []float32{1, 2, 3, 4}))
	})
}
