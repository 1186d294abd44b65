// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is an ordered list of positive dimensions, outermost first.
type Shape []int

// Validate checks len(s) ≥ 1, every dimension > 0 and that the element
// count fits in an int. It returns a wrapped ErrBadShape otherwise.
// Complexity: O(len(s)).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("Shape.Validate: empty shape: %w", ErrBadShape)
	}
	size := 1
	for axis, d := range s {
		if d <= 0 {
			return fmt.Errorf("Shape.Validate: dimension %d is %d: %w", axis, d, ErrBadShape)
		}
		if size > math.MaxInt/d {
			return fmt.Errorf("Shape.Validate: element count overflows int: %w", ErrBadShape)
		}
		size *= d
	}

	return nil
}

// Size returns the number of elements (product of dimensions).
// The result is meaningful only for a valid shape.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Ndim returns the number of dimensions.
func (s Shape) Ndim() int { return len(s) }

// Strides returns row-major element strides: the last axis has stride 1.
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for k := len(s) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= s[k]
	}

	return st
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Equal reports whether s and o have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if s[k] != o[k] {
			return false
		}
	}

	return true
}

// String renders the shape numpy-style: "(3, 4)" or "(5,)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for k, d := range s {
		parts[k] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// normalizeAxis maps a possibly negative axis into [0, ndim).
func normalizeAxis(axis, ndim int) (int, error) {
	if axis < -ndim || axis >= ndim {
		return 0, fmt.Errorf("axis %d for ndim %d: %w", axis, ndim, ErrBadAxis)
	}
	if axis < 0 {
		axis += ndim
	}

	return axis, nil
}
