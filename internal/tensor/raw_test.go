package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw_ZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Int64, CPU)
	require.NoError(t, err)

	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 48, raw.ByteSize())
	assert.Equal(t, []int{2, 1}, raw.Strides())
	for _, v := range raw.AsInt64() {
		assert.Zero(t, v)
	}
}

func TestRawTensor_AsWrongTypePanics(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { raw.AsFloat64() })
}

func TestRawTensor_Cast(t *testing.T) {
	src, err := Synthetic(Shape{2, 3}, Float32)
	require.NoError(t, err)

	f64, err := src.Cast(Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1, 1.5}, f64.AsFloat64())

	i32, err := src.Cast(Int32)
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, 0, 0, 0, 1, 1}, i32.AsInt32())

	same, err := src.Cast(Float32)
	require.NoError(t, err)
	assert.Same(t, src, same)
}

func TestRawTensor_CloneIsDeep(t *testing.T) {
	src, err := Synthetic(Shape{4}, Float64)
	require.NoError(t, err)

	clone := src.Clone()
	require.True(t, clone.Equal(src))

	clone.AsFloat64()[0] = 42
	assert.False(t, clone.Equal(src))
	assert.Equal(t, -1.0, src.AsFloat64()[0])
}

func TestRawTensor_SetFloat64sLengthMismatch(t *testing.T) {
	raw, err := NewRaw(Shape{2, 2}, Float32, CPU)
	require.NoError(t, err)

	assert.Error(t, raw.SetFloat64s([]float64{1, 2, 3}))
}

func TestShape_Helpers(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.Equal(t, Shape{2, 3, 4, 5, 6}, s.Concat(5, 6))
	assert.Equal(t, Shape{2, 3, 4}, s, "Concat must not alias")
	assert.Equal(t, "(2,3,4)", s.String())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestRawTensor_ReshapeSharesData(t *testing.T) {
	r, err := Synthetic(Shape{2, 3}, Float32)
	require.NoError(t, err)

	v, err := r.Reshape(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, v.Shape())
	assert.Equal(t, []int{2, 1}, v.Strides())

	v.AsFloat32()[0] = 42
	assert.Equal(t, float32(42), r.AsFloat32()[0])

	_, err = r.Reshape(Shape{4, 2})
	assert.ErrorContains(t, err, "element count 6 != 8")
	_, err = r.Reshape(Shape{6, 0})
	assert.ErrorIs(t, err, ErrInvalidShape)
}
