package cpu

import (
	"fmt"

	"github.com/loom-ml/loom/internal/linalg"
	"github.com/loom-ml/loom/internal/tensor"
)

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Float tensors route through the BLAS gemm kernel; integer tensors use a
// portable O(n³) loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	switch a.DType() {
	case tensor.Float32, tensor.Float64:
		result, err := linalg.MatMul(a, b)
		if err != nil {
			panic(fmt.Sprintf("matmul: %v", err))
		}
		return result
	case tensor.Int32, tensor.Int64:
		return cpu.matmulInt(a, b)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
}

func (cpu *CPUBackend) matmulInt(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Int32:
		matmulNaive(result.AsInt32(), a, b, a.AsInt32(), b.AsInt32(), m, k, n)
	case tensor.Int64:
		matmulNaive(result.AsInt64(), a, b, a.AsInt64(), b.AsInt64(), m, k, n)
	}

	return result
}

// matmulNaive computes c[i,j] = sum_k a[i,k] * b[k,j] using each operand's
// strides, so transpose views multiply without a contiguous copy.
func matmulNaive[T int32 | int64](c []T, a, b *tensor.RawTensor, av, bv []T, m, k, n int) {
	as := a.Strides()
	bs := b.Strides()

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += av[i*as[0]+p*as[1]] * bv[p*bs[0]+j*bs[1]]
			}
			c[i*n+j] = sum
		}
	}
}
