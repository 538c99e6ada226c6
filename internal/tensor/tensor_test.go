package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 6, Shape{2, 3}.NumElements())
	assert.Equal(t, 4, Shape{4}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements()) // scalar
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{3, 2}))
	assert.False(t, s.Equal(Shape{2, 3, 1}))

	clone := s.Clone()
	clone[0] = 9
	assert.Equal(t, 2, s[0], "Clone must not share backing storage")
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	tt, err := FromSlice(data, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, tt.Shape())
	assert.Equal(t, 6, tt.NumElements())
	assert.Equal(t, float32(6), tt.At(1, 2))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3})
	require.Error(t, err)
}

func TestFromMatrix(t *testing.T) {
	tt, err := FromMatrix([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tt.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, tt.Data())
}

func TestFromMatrixRagged(t *testing.T) {
	_, err := FromMatrix([][]float32{{1, 2}, {3}})
	require.Error(t, err)
}

func TestNewZeroFilled(t *testing.T) {
	tt, err := New(Shape{3})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, tt.Data())
}
