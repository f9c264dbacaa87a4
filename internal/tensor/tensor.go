// Package tensor provides the dense float64 arrays consumed by the loss functions.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Tensor is an n-dimensional array of float64 stored in row-major order.
type Tensor struct {
	shape Shape
	data  []float64
}

// New creates a tensor that takes ownership of data.
// It panics if len(data) does not match the element count of shape.
func New(shape Shape, data []float64) *Tensor {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("tensor: data length %d does not match shape %v", len(data), shape))
	}
	return &Tensor{shape: shape.Clone(), data: data}
}

// Vector creates a 1-D tensor from the given values.
func Vector(values ...float64) *Tensor {
	data := make([]float64, len(values))
	copy(data, values)
	return &Tensor{shape: Shape{len(values)}, data: data}
}

// FromRows creates a 2-D tensor of shape [len(rows), len(rows[0])].
func FromRows(rows [][]float64) *Tensor {
	if len(rows) == 0 {
		return &Tensor{shape: Shape{0, 0}}
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("tensor: row %d has %d columns, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}
	return &Tensor{shape: Shape{len(rows), cols}, data: data}
}

// FromDense copies a gonum matrix into a 2-D tensor.
func FromDense(m mat.Matrix) *Tensor {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return &Tensor{shape: Shape{r, c}, data: data}
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) *Tensor {
	return &Tensor{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// ZerosLike creates a zero-filled tensor with the shape of t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.shape)
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Size returns the number of scalar entries across all dimensions.
func (t *Tensor) Size() int {
	return len(t.data)
}

// BatchSize returns the size of the first dimension.
// A scalar tensor counts as a batch of one.
func (t *Tensor) BatchSize() int {
	if len(t.shape) == 0 {
		return 1
	}
	return t.shape[0]
}

// Data returns the backing slice. Writes through it modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor) At(idx ...int) float64 {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match tensor rank %d", len(idx), len(t.shape)))
	}
	offset := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of size %d", v, i, t.shape[i]))
		}
		offset = offset*t.shape[i] + v
	}
	return t.data[offset]
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{shape: t.shape.Clone(), data: data}
}

// Dense returns the tensor as a gonum matrix sharing the same backing data.
// 1-D tensors become a single row. Tensors of rank above 2 are rejected.
func (t *Tensor) Dense() *mat.Dense {
	switch len(t.shape) {
	case 0:
		return mat.NewDense(1, 1, t.data)
	case 1:
		return mat.NewDense(1, t.shape[0], t.data)
	case 2:
		return mat.NewDense(t.shape[0], t.shape[1], t.data)
	default:
		panic(fmt.Sprintf("tensor: cannot view rank %d tensor as a matrix", len(t.shape)))
	}
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", []int(t.shape), t.data)
}
