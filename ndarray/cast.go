// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Convert an Array to another element type (Astype) under an explicit
//     overflow policy, and extract typed Go slices (Values).
//
// Policy:
//   - Integer targets truncate toward zero (same as a Go float→int conversion).
//   - CastStrict rejects values the target cannot hold (ErrCastOverflow),
//     including NaN/±Inf for integers and finite values beyond ±MaxFloat32.
//   - CastSaturate clamps to the nearest representable value; NaN→0 for integers.
//   - Bool never fails: non-zero (and NaN) → 1, zero → 0.
//
// Because every target value is exactly representable in float64, the
// result keeps float64 storage without loss.

package ndarray

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

const (
	ctxAstype = "Astype"
	ctxValues = "Values"
)

// CastPolicy selects how Astype handles values outside the target range.
type CastPolicy uint8

const (
	// CastStrict fails with ErrCastOverflow on unrepresentable values. Default.
	CastStrict CastPolicy = iota
	// CastSaturate clamps unrepresentable values to the target bounds.
	CastSaturate
)

// DefaultCastPolicy is the policy used when none is requested.
const DefaultCastPolicy = CastStrict

// String implements fmt.Stringer.
func (p CastPolicy) String() string {
	switch p {
	case CastStrict:
		return "strict"
	case CastSaturate:
		return "saturate"
	}

	return "CastPolicy(" + strconv.Itoa(int(p)) + ")"
}

// Astype returns a copy of a converted to dtype d.
// Implementation:
//   - Stage 1: validate d.
//   - Stage 2: convert element-wise in row-major order via castValue.
//
// Errors:
//   - ErrBadDtype for an unknown d.
//   - ErrCastOverflow (wrapped with the flat index) under CastStrict.
//
// Complexity: O(n) time and space. a is never mutated; on error no array is returned.
func (a *Array) Astype(d Dtype, policy CastPolicy) (*Array, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%s(%v): %w", ctxAstype, d, ErrBadDtype)
	}
	out := a.like()
	out.dtype = d

	var (
		v   float64
		err error
	)
	for k, x := range a.data {
		if v, err = castValue(x, d, policy); err != nil {
			return nil, fmt.Errorf("%s(%v): element %d (%g): %w", ctxAstype, d, k, x, err)
		}
		out.data[k] = v
	}

	return out, nil
}

// castValue converts a single value to the set of values dtype d represents.
// Complexity: O(1).
func castValue(v float64, d Dtype, policy CastPolicy) (float64, error) {
	switch {
	case d == Float64:
		return v, nil
	case d == Float32:
		return castFloat32(v, policy)
	case d == Bool:
		if v != 0 {
			return 1, nil
		}
		return 0, nil
	case d.IsInteger():
		return castInteger(v, d, policy)
	}

	return 0, ErrBadDtype
}

func castFloat32(v float64, policy CastPolicy) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, nil // float32 holds NaN and ±Inf
	}
	if math.Abs(v) > math.MaxFloat32 {
		if policy == CastStrict {
			return 0, ErrCastOverflow
		}
		return math.Copysign(math.MaxFloat32, v), nil
	}

	return float64(float32(v)), nil
}

func castInteger(v float64, d Dtype, policy CastPolicy) (float64, error) {
	lo, hi, hiExclusive := d.integerRange()
	if hiExclusive {
		hi = math.Nextafter(hi, 0) // largest float64 strictly below 2^63 / 2^64
	}
	if math.IsNaN(v) {
		if policy == CastStrict {
			return 0, ErrCastOverflow
		}
		return 0, nil
	}
	t := math.Trunc(v)
	if t < lo || t > hi {
		if policy == CastStrict {
			return 0, ErrCastOverflow
		}
		return math.Max(lo, math.Min(hi, t)), nil
	}

	return t, nil
}

// Number is the set of Go element types Values can extract into.
type Number interface {
	constraints.Integer | constraints.Float
}

// Values extracts the elements of a as a []T in row-major order, applying
// the strict cast rules of Astype for T's element type.
// Errors:
//   - ErrBadDtype when T is a named type without a matching Dtype.
//   - ErrCastOverflow when an element does not fit T.
//
// Complexity: O(n).
func Values[T Number](a *Array) ([]T, error) {
	if a == nil {
		return nil, arrayErrorf(ctxValues, ErrNilArray)
	}
	d, ok := dtypeOf[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("%s[%T]: %w", ctxValues, zero, ErrBadDtype)
	}
	out := make([]T, len(a.data))
	for k, x := range a.data {
		v, err := castValue(x, d, CastStrict)
		if err != nil {
			return nil, fmt.Errorf("%s[%v]: element %d (%g): %w", ctxValues, d, k, x, err)
		}
		out[k] = T(v)
	}

	return out, nil
}

// dtypeOf maps a Go element type to its Dtype. int/uint follow the platform word size.
func dtypeOf[T Number]() (Dtype, bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Float64, true
	case float32:
		return Float32, true
	case int8:
		return Int8, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int64:
		return Int64, true
	case int:
		if strconv.IntSize == 32 {
			return Int32, true
		}
		return Int64, true
	case uint8:
		return Uint8, true
	case uint16:
		return Uint16, true
	case uint32:
		return Uint32, true
	case uint64, uintptr:
		return Uint64, true
	case uint:
		if strconv.IntSize == 32 {
			return Uint32, true
		}
		return Uint64, true
	}

	return 0, false
}
