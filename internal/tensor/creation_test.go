package tensor

import (
	"math"
	"testing"
)

func TestZeros(t *testing.T) {
	backend := NewMockBackend()
	tensor := Zeros[float32](Shape{2, 3}, backend)

	if !tensor.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", tensor.Shape())
	}
	for i, v := range tensor.Data() {
		if v != 0 {
			t.Fatalf("Zeros data[%d] = %v, want 0", i, v)
		}
	}
}

func TestOnes(t *testing.T) {
	backend := NewMockBackend()
	tensor := Ones[int64](Shape{4}, backend)
	for i, v := range tensor.Data() {
		if v != 1 {
			t.Fatalf("Ones data[%d] = %v, want 1", i, v)
		}
	}
}

func TestOnesBool(t *testing.T) {
	backend := NewMockBackend()
	tensor := Ones[bool](Shape{3}, backend)
	for i, v := range tensor.Data() {
		if !v {
			t.Fatalf("Ones[bool] data[%d] = false, want true", i)
		}
	}
}

func TestFull(t *testing.T) {
	backend := NewMockBackend()
	tensor := Full[float64](Shape{2, 2}, 3.14, backend)
	for i, v := range tensor.Data() {
		if v != 3.14 {
			t.Fatalf("Full data[%d] = %v, want 3.14", i, v)
		}
	}
}

func TestEye(t *testing.T) {
	backend := NewMockBackend()
	tensor := Eye[float64](3, backend)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if tensor.At(i, j) != want {
				t.Errorf("Eye At(%d,%d) = %v, want %v", i, j, tensor.At(i, j), want)
			}
		}
	}
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()
	tensor := Arange[int32](2, 7, backend)

	if !tensor.Shape().Equal(Shape{5}) {
		t.Fatalf("Arange shape = %v, want [5]", tensor.Shape())
	}
	for i, v := range tensor.Data() {
		if v != int32(2+i) {
			t.Fatalf("Arange data = %v", tensor.Data())
		}
	}
}

func TestArangeEmpty(t *testing.T) {
	backend := NewMockBackend()
	defer func() {
		if recover() == nil {
			t.Error("Arange with end <= start should panic")
		}
	}()
	Arange[int32](5, 5, backend)
}

func TestRandRange(t *testing.T) {
	backend := NewMockBackend()
	tensor := Rand[float64](Shape{100}, backend)
	for i, v := range tensor.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Rand data[%d] = %v, want [0, 1)", i, v)
		}
	}
}

func TestRandnFinite(t *testing.T) {
	backend := NewMockBackend()
	tensor := Randn[float64](Shape{101}, backend) // odd length hits the tail element
	for i, v := range tensor.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Randn data[%d] = %v", i, v)
		}
	}
}
