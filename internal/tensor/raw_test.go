package tensor

import (
	"testing"
)

// RawTensor Tests

func TestRawTensorAsFloat64(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Float64, CPU)
	data := raw.AsFloat64()

	if len(data) != 6 {
		t.Errorf("AsFloat64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat64()[0] != 42 {
		t.Error("AsFloat64 should return zero-copy slice")
	}
}

func TestRawTensorAsComplex128(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Complex128, CPU)
	data := raw.AsComplex128()

	if len(data) != 4 {
		t.Errorf("AsComplex128 length = %d, want 4", len(data))
	}

	data[0] = complex(1, -1)
	if raw.AsComplex128()[0] != complex(1, -1) {
		t.Error("AsComplex128 should return zero-copy slice")
	}
}

func TestRawTensorAccessorDTypeMismatch(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)

	defer func() {
		if recover() == nil {
			t.Error("AsInt64 on a Float32 tensor should panic")
		}
	}()
	raw.AsInt64()
}

func TestRawTensorDefaultLayout(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	if !raw.Layout().IsRowMajor() {
		t.Error("NewRaw should produce a row-major tensor")
	}

	col, _ := NewRawColMajor(Shape{2, 3}, Float64, CPU)
	if !col.Layout().IsColMajor() {
		t.Error("NewRawColMajor should produce a col-major tensor")
	}
	if col.Strides()[0] != 1 || col.Strides()[1] != 2 {
		t.Errorf("col-major strides = %v, want [1 2]", col.Strides())
	}
}

func TestRawTensorCloneIsShared(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	raw.AsFloat32()[0] = 1.5

	clone := raw.Clone()
	if clone.AsFloat32()[0] != 1.5 {
		t.Error("clone should share the buffer")
	}
	if raw.IsUnique() {
		t.Error("after Clone, the buffer should not be unique")
	}
	if !clone.IsView() {
		t.Error("clone should report IsView")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("after Release of the clone, the buffer should be unique again")
	}
}

func TestRawTensorPermute(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 4}, Float64, CPU)
	view, err := raw.Permute(2, 0, 1)
	if err != nil {
		t.Fatalf("Permute: %v", err)
	}

	if !view.Shape().Equal(Shape{4, 2, 3}) {
		t.Errorf("permuted shape = %v, want [4 2 3]", view.Shape())
	}
	want := []int{1, 12, 4}
	for i := range want {
		if view.Strides()[i] != want[i] {
			t.Errorf("permuted strides = %v, want %v", view.Strides(), want)
			break
		}
	}
	if !view.IsView() {
		t.Error("Permute should return a view")
	}
}

func TestRawTensorPermuteInvalidAxes(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	if _, err := raw.Permute(0); err == nil {
		t.Error("Permute with wrong axis count should fail")
	}
	if _, err := raw.Permute(0, 0); err == nil {
		t.Error("Permute with a duplicate axis should fail")
	}
	if _, err := raw.Permute(0, 2); err == nil {
		t.Error("Permute with an out-of-range axis should fail")
	}
}

func TestRawTensorTransposeViewLayout(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	view, err := raw.TransposeView()
	if err != nil {
		t.Fatalf("TransposeView: %v", err)
	}

	if !view.Shape().Equal(Shape{3, 2}) {
		t.Errorf("transposed shape = %v, want [3 2]", view.Shape())
	}
	// Transposing a row-major matrix yields a column-major view.
	if !view.Layout().IsColMajor() {
		t.Errorf("transposed layout = %s, want col-major", view.Layout())
	}

	// The view shares the buffer: a write through the source is visible.
	raw.AsFloat64()[1] = 7 // element (0, 1)
	if view.AsFloat64()[view.Strides()[0]*1] != 7 {
		t.Error("transpose view should share the source buffer")
	}
}

func TestRawTensorTransposeViewRank(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3, 4}, Float64, CPU)
	if _, err := raw.TransposeView(); err == nil {
		t.Error("TransposeView on a rank-3 tensor should fail")
	}
}

func TestRawTensorAsContiguousRowFromColView(t *testing.T) {
	// 2x3 row-major: [[1 2 3] [4 5 6]]
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	copy(raw.AsFloat64(), []float64{1, 2, 3, 4, 5, 6})

	view, _ := raw.TransposeView() // 3x2, col-major
	out, err := view.AsContiguous(LayoutRowMajor)
	if err != nil {
		t.Fatalf("AsContiguous: %v", err)
	}

	if !out.Layout().IsRowMajor() {
		t.Error("result should be row-major")
	}
	// Transpose of the source: [[1 4] [2 5] [3 6]]
	want := []float64{1, 4, 2, 5, 3, 6}
	got := out.AsFloat64()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AsContiguous data = %v, want %v", got, want)
		}
	}

	// The duplicate must not share the buffer.
	out.AsFloat64()[0] = 99
	if raw.AsFloat64()[0] == 99 {
		t.Error("AsContiguous should copy, not alias")
	}
}

func TestRawTensorAsContiguousColMajor(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	copy(raw.AsFloat64(), []float64{1, 2, 3, 4, 5, 6})

	out, err := raw.AsContiguous(LayoutColMajor)
	if err != nil {
		t.Fatalf("AsContiguous: %v", err)
	}
	if !out.Layout().IsColMajor() {
		t.Error("result should be col-major")
	}
	// Same logical matrix, column order in memory.
	want := []float64{1, 4, 2, 5, 3, 6}
	got := out.AsFloat64()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("col-major buffer = %v, want %v", got, want)
		}
	}
}

func TestRawTensorAsContiguousBadOrder(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)
	if _, err := raw.AsContiguous(LayoutNone); err == nil {
		t.Error("AsContiguous(LayoutNone) should fail")
	}
}

func TestRawTensorZeroAt(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Int64, CPU)
	data := raw.AsInt64()
	for i := range data {
		data[i] = 9
	}

	raw.ZeroAt(1, 0)
	if data[2] != 0 {
		t.Errorf("ZeroAt(1,0): element = %d, want 0", data[2])
	}
	if data[0] != 9 || data[1] != 9 || data[3] != 9 {
		t.Error("ZeroAt should only touch the addressed element")
	}
}

func TestRawTensorCopyElem(t *testing.T) {
	src, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	dst, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	src.AsFloat32()[3] = 5 // (1, 1)

	src.CopyElem(dst, []int{1, 1}, []int{0, 0})
	if dst.AsFloat32()[0] != 5 {
		t.Errorf("CopyElem result = %v, want 5", dst.AsFloat32()[0])
	}
}

func TestRawTensorRelease(_ *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	raw.Release()
}

func TestRawTensorEmptyDimensions(t *testing.T) {
	for _, shape := range []Shape{{0, 0}, {3, 0}, {0}} {
		raw, err := NewRaw(shape, Float64, CPU)
		if err != nil {
			t.Fatalf("NewRaw(%v) failed: %v", shape, err)
		}
		if got := raw.AsFloat64(); len(got) != 0 {
			t.Errorf("AsFloat64() on shape %v has length %d, want 0", shape, len(got))
		}
		if got := raw.Data(); len(got) != 0 {
			t.Errorf("Data() on shape %v has length %d, want 0", shape, len(got))
		}

		compact, err := raw.AsContiguous(LayoutRowMajor)
		if err != nil {
			t.Fatalf("AsContiguous(%v) failed: %v", shape, err)
		}
		if !compact.Shape().Equal(shape) {
			t.Errorf("AsContiguous shape = %v, want %v", compact.Shape(), shape)
		}
	}
}
