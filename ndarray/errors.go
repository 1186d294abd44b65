// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the ndarray
// package. All kernels MUST return these sentinels (optionally wrapped with
// arrayErrorf) and tests MUST check them via errors.Is. No public function
// panics on user-triggered error conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "ndarray: ..." for grep-ability. Context is
// added with arrayErrorf("Tag", ErrX) at the detection site; callers still
// match with errors.Is.
//
// ERROR PRIORITY: nil/shape -> index -> axis -> numeric parameter -> cast.

var (
	// ErrBadShape is returned when a shape is empty, holds a non-positive
	// dimension, or its element count overflows int.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrRankMismatch indicates the operation requires a different number of
	// dimensions (e.g. Matrix on a 3-D array).
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrDimensionMismatch indicates incompatible shapes between operands or a
	// data slice whose length does not match the shape.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrOutOfRange indicates that an index is outside valid bounds, or the
	// wrong number of indices was supplied. At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadAxis indicates that an axis argument is outside [-ndim, ndim).
	ErrBadAxis = errors.New("ndarray: axis out of range")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrModuloByZero is returned by Mod when the divisor is zero.
	ErrModuloByZero = errors.New("ndarray: modulo by zero")

	// ErrNaNInf signals a NaN or ±Inf scalar argument where a finite value is required.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")

	// ErrBadDtype indicates an unknown element type.
	ErrBadDtype = errors.New("ndarray: unknown dtype")

	// ErrCastOverflow is returned when a value cannot be represented by the
	// target element type under the strict cast policy.
	ErrCastOverflow = errors.New("ndarray: cast overflow")
)

// arrayErrorf wraps err with an operation tag: "<tag>: <err>".
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
