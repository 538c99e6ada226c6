// Package tensor provides the flat float32 tensor type consumed by the
// ffnet model exporter.
//
// The export format carries every numeric value as a 4-byte IEEE-754 float,
// so unlike a general ML framework there is exactly one data type here.
// Tensors store their elements contiguously in row-major order, which is
// also the order they are written to disk.
package tensor

import "fmt"

// Tensor is a dense float32 array with row-major memory layout.
//
// Tensors are read-only inputs to an export operation: the exporter never
// mutates them, and Data returns the backing slice without copying.
type Tensor struct {
	shape Shape
	data  []float32
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor that views data as an array of the given shape.
//
// The slice is used directly, not copied; len(data) must equal the shape's
// element count.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Tensor{shape: shape.Clone(), data: data}, nil
}

// FromMatrix creates a 2-D tensor from a slice of equal-length rows.
func FromMatrix(rows [][]float32) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix has no rows")
	}
	cols := len(rows[0])
	data := make([]float32, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return FromSlice(data, Shape{len(rows), cols})
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major backing slice.
func (t *Tensor) Data() []float32 {
	return t.data
}

// At returns the element at the given indices, one per axis.
func (t *Tensor) At(indices ...int) float32 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("At: got %d indices for rank-%d tensor", len(indices), len(t.shape)))
	}
	offset := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= t.shape[axis] {
			panic(fmt.Sprintf("At: index %d out of range for axis %d (extent %d)", idx, axis, t.shape[axis]))
		}
		offset = offset*t.shape[axis] + idx
	}
	return t.data[offset]
}
