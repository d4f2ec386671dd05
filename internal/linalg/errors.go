package linalg

import "fmt"

// NumericalErrorKind discriminates kernel status failures.
type NumericalErrorKind int

// Kernel failure kinds. LU-family operations (solve, inverse,
// determinant, Cholesky) report SingularMatrix; iterative eigen/SVD
// kernels report ConvergenceFailure.
const (
	SingularMatrix NumericalErrorKind = iota
	ConvergenceFailure
)

// String returns a human-readable kind name.
func (k NumericalErrorKind) String() string {
	switch k {
	case SingularMatrix:
		return "singular matrix"
	case ConvergenceFailure:
		return "convergence failure"
	default:
		return "unknown"
	}
}

// NumericalError reports a nonzero status from a dense kernel. The
// working buffers passed to the kernel may be left partially
// overwritten; callers needing the original input must duplicate it
// beforehand (the out-of-place operations already do). Numerical
// failures are deterministic for a given input and kernel, so the
// operation is never retried.
type NumericalError struct {
	Kind NumericalErrorKind
	Op   string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("linalg: %s: %s", e.Op, e.Kind)
}

// Is supports errors.Is matching on the error kind.
func (e *NumericalError) Is(target error) bool {
	t, ok := target.(*NumericalError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}
