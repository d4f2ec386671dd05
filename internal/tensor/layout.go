package tensor

// Layout is a bitmask describing the memory layout of a tensor.
//
// A tensor whose elements are laid out contiguously in C order is
// RowMajor; Fortran order is ColMajor. Rank-0 and rank-1 contiguous
// tensors (and tensors with any dimension of size <= 1 along every
// distinguishing axis) satisfy both. A strided view may satisfy neither.
type Layout uint8

// Layout flags.
const (
	LayoutRowMajor Layout = 1 << iota
	LayoutColMajor

	LayoutNone Layout = 0
)

// IsRowMajor reports whether the layout includes contiguous row-major.
func (l Layout) IsRowMajor() bool { return l&LayoutRowMajor != 0 }

// IsColMajor reports whether the layout includes contiguous column-major.
func (l Layout) IsColMajor() bool { return l&LayoutColMajor != 0 }

// IsContiguous reports whether the layout is contiguous in either order.
func (l Layout) IsContiguous() bool { return l != LayoutNone }

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch {
	case l.IsRowMajor() && l.IsColMajor():
		return "row-major|col-major"
	case l.IsRowMajor():
		return "row-major"
	case l.IsColMajor():
		return "col-major"
	default:
		return "strided"
	}
}

// LayoutOf classifies the layout of a shape/strides pair.
//
// Dimensions of size 1 can take any stride without changing element
// order, so they are ignored during classification.
func LayoutOf(shape Shape, strides []int) Layout {
	var layout Layout
	if stridesMatch(shape, strides, shape.RowMajorStrides()) {
		layout |= LayoutRowMajor
	}
	if stridesMatch(shape, strides, shape.ColMajorStrides()) {
		layout |= LayoutColMajor
	}
	return layout
}

func stridesMatch(shape Shape, got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if shape[i] <= 1 {
			continue
		}
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// FlatToIndices converts a flat position in iteration order into a
// multi-index for the given shape. It is the inverse of IndicesToFlat
// for contiguous row-major tensors and is the mapping the triangular
// operations use to interpret position (row = flat / ncols,
// col = flat % ncols for a 2-D tensor).
func FlatToIndices(flat int, shape Shape) []int {
	indices := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 0 {
			return indices
		}
		indices[i] = flat % shape[i]
		flat /= shape[i]
	}
	return indices
}

// IndicesToFlat converts a multi-index into a flat element offset using
// the given strides. It does not bounds-check; callers validate indices.
func IndicesToFlat(indices, strides []int) int {
	flat := 0
	for i, idx := range indices {
		flat += idx * strides[i]
	}
	return flat
}

// NextIndex advances a multi-index one step in row-major iteration order.
func NextIndex(idx []int, shape Shape) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return
		}
		idx[d] = 0
	}
}
