package tensor

import "fmt"

// ShapeErrorKind discriminates shape validation failures.
type ShapeErrorKind int

// Shape validation failure kinds.
const (
	NotAMatrix ShapeErrorKind = iota
	NotSquare
	DimensionMismatch
)

// String returns a human-readable kind name.
func (k ShapeErrorKind) String() string {
	switch k {
	case NotAMatrix:
		return "not a matrix"
	case NotSquare:
		return "not square"
	case DimensionMismatch:
		return "dimension mismatch"
	default:
		return "unknown"
	}
}

// ShapeError reports a failed shape validation. It is raised
// synchronously before any kernel call; no mutation has occurred.
type ShapeError struct {
	Kind  ShapeErrorKind
	Op    string
	Shape Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tensor: %s: %s (shape %v)", e.Op, e.Kind, e.Shape)
}

// Is supports errors.Is matching on the error kind.
func (e *ShapeError) Is(target error) bool {
	t, ok := target.(*ShapeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// RequireMatrix fails with a ShapeError unless t has rank 2.
// It performs no side effect on failure.
func RequireMatrix(op string, t *RawTensor) error {
	if t.Rank() != 2 {
		return &ShapeError{Kind: NotAMatrix, Op: op, Shape: t.Shape()}
	}
	return nil
}

// RequireSquareMatrix fails with a ShapeError unless t is a square matrix.
func RequireSquareMatrix(op string, t *RawTensor) error {
	if t.Rank() != 2 {
		return &ShapeError{Kind: NotAMatrix, Op: op, Shape: t.Shape()}
	}
	if t.Shape()[0] != t.Shape()[1] {
		return &ShapeError{Kind: NotSquare, Op: op, Shape: t.Shape()}
	}
	return nil
}

// EnsureLayout returns t itself when it already has the requested
// contiguous layout, and a fresh duplicate in that layout otherwise.
// The original tensor is never mutated and layout alone never errors.
func EnsureLayout(t *RawTensor, order Layout) (*RawTensor, error) {
	if t.Layout()&order != 0 {
		return t, nil
	}
	return t.AsContiguous(order)
}
