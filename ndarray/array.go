// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major float64 buffer addressed by the stride formula
//     Σ idx[k]*stride[k].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep kernels deterministic (fixed row-major loop order, no map iteration).
//
// Complexity quicksheet:
//   - New/Full/Ones: O(n) fill; At/Set: O(ndim); Clone: O(n).

package ndarray

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromData = "FromSlice"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxMatrix   = "Matrix"
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Array is a dense N-dimensional array in row-major order.
//   - shape holds the dimensions (validated, immutable after construction).
//   - strides caches Shape.Strides() for index arithmetic.
//   - data has exactly shape.Size() elements.
//   - dtype records the element type the values conform to.
type Array struct {
	shape   Shape
	strides []int
	data    []float64
	dtype   Dtype
}

var _ fmt.Stringer = (*Array)(nil)

// New returns a zero-filled float64 array of the given shape.
// Errors: ErrBadShape (wrapped) on an invalid shape.
// Complexity: O(n) time and space.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	return newUnchecked(shape.Clone(), make([]float64, shape.Size()), Float64), nil
}

// Full returns a float64 array of the given shape with every element set to v.
func Full(shape Shape, v float64) (*Array, error) {
	a, err := New(shape)
	if err != nil {
		return nil, err
	}
	for k := range a.data {
		a.data[k] = v
	}

	return a, nil
}

// Ones returns a float64 array of the given shape filled with 1.
func Ones(shape Shape) (*Array, error) { return Full(shape, 1) }

// FromSlice copies data into a new float64 array of the given shape.
// Errors: ErrBadShape, or ErrDimensionMismatch when len(data) != shape.Size().
func FromSlice(shape Shape, data []float64) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf(ctxFromData, err)
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%s: len(data)=%d, shape %v needs %d: %w",
			ctxFromData, len(data), shape, shape.Size(), ErrDimensionMismatch)
	}

	return newUnchecked(shape.Clone(), append([]float64(nil), data...), Float64), nil
}

// newUnchecked assembles an Array from an already validated shape and a
// buffer it takes ownership of.
func newUnchecked(shape Shape, data []float64, dtype Dtype) *Array {
	return &Array{shape: shape, strides: shape.Strides(), data: data, dtype: dtype}
}

// like allocates a zeroed array with a's shape and dtype.
func (a *Array) like() *Array {
	return newUnchecked(a.shape.Clone(), make([]float64, len(a.data)), a.dtype)
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// Dtype returns the element type tag.
func (a *Array) Dtype() Dtype { return a.dtype }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.data) }

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int { return len(a.shape) }

// Data returns a copy of the row-major element buffer.
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// offset validates idx against the shape and returns the flat offset.
// Errors: ErrOutOfRange when len(idx) != ndim or any index is outside [0, dim).
// Complexity: O(ndim).
func (a *Array) offset(tag string, idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("Array.%s%v: want %d indices: %w", tag, idx, len(a.shape), ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("Array.%s%v: %w", tag, idx, ErrOutOfRange)
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at idx (one index per dimension).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(ctxAt, idx)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set stores v at idx. The value is stored as given; Set does not re-apply
// the dtype, so callers writing into a cast array own that contract.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(ctxSet, idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy (shape, data and dtype).
// Complexity: O(n).
func (a *Array) Clone() *Array {
	return newUnchecked(a.shape.Clone(), append([]float64(nil), a.data...), a.dtype)
}

// Row returns a copy of row i of a 2-D array.
// Errors: ErrRankMismatch for ndim != 2, ErrOutOfRange for a bad row.
func (a *Array) Row(i int) ([]float64, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("Array.%s: ndim %d: %w", ctxRow, len(a.shape), ErrRankMismatch)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, fmt.Errorf("Array.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	c := a.shape[1]

	return append([]float64(nil), a.data[i*c:(i+1)*c]...), nil
}

// Matrix exports a 2-D array as a gonum *mat.Dense backed by a copy of the data.
// Errors: ErrRankMismatch for ndim != 2.
func (a *Array) Matrix() (*mat.Dense, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("Array.%s: ndim %d: %w", ctxMatrix, len(a.shape), ErrRankMismatch)
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
}

// String renders nested brackets in row-major order, e.g. "[[1, 2], [3, 4]]".
// Intended for diagnostics and Example output.
// Complexity: O(n).
func (a *Array) String() string {
	var b strings.Builder
	a.writeAxis(&b, 0, 0)

	return b.String()
}

// writeAxis renders the sub-array starting at flat offset base along axis.
func (a *Array) writeAxis(b *strings.Builder, axis, base int) {
	b.WriteString(_fmtOpen)
	last := axis == len(a.shape)-1
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		if last {
			fmt.Fprintf(b, "%g", a.data[base+i])
			continue
		}
		a.writeAxis(b, axis+1, base+i*a.strides[axis])
	}
	b.WriteString(_fmtClose)
}
