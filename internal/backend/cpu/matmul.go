package cpu

import (
	"fmt"

	"github.com/born-ml/costgen/internal/parallel"
	"github.com/born-ml/costgen/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
// Float32, Float64, Int32 and Int64 run typed loops; other types are widened
// to float64 and narrowed back into the operand type.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, fmt.Errorf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape))
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("matmul: dtype mismatch %s @ %s", a.DType(), b.DType())
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		return nil, fmt.Errorf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("matmul: failed to create result tensor: %w", err)
	}

	switch a.DType() {
	case tensor.Float32:
		matmul(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.parallel)
	case tensor.Float64:
		matmul(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.parallel)
	case tensor.Int32:
		matmul(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n, cpu.parallel)
	case tensor.Int64:
		matmul(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, cpu.parallel)
	default:
		c := make([]float64, m*n)
		matmul(c, a.Float64s(), b.Float64s(), m, k, n, cpu.parallel)
		if err := result.SetFloat64s(c); err != nil {
			return nil, fmt.Errorf("matmul: %w", err)
		}
	}

	return result, nil
}

type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// matmul computes C[i,j] = sum_k A[i,k] * B[k,j] with an i-k-j loop order
// so the inner loop walks both B and C contiguously. Rows of C are split
// across workers.
func matmul[T numeric](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.Range(m, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := c[i*n : (i+1)*n]
			clear(row)
			for kIdx := 0; kIdx < k; kIdx++ {
				aik := a[i*k+kIdx]
				bRow := b[kIdx*n : (kIdx+1)*n]
				for j := range row {
					row[j] += aik * bRow[j]
				}
			}
		}
	})
}
