// SPDX-License-Identifier: MIT

package ndarray

import (
	"math"
	"strconv"
)

// Dtype tags the numeric representation of an Array's elements.
// Storage is always float64; the tag records which values the array is
// allowed to hold after a cast (see Astype).
type Dtype uint8

// Supported element types. Float64 is the zero value and the default.
const (
	Float64 Dtype = iota
	Float32
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Bool
	dtypeCount // keep last
)

var dtypeNames = [dtypeCount]string{
	Float64: "float64",
	Float32: "float32",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Bool:    "bool",
}

const (
	two63 = 9223372036854775808.0  // 2^63, first float64 above MaxInt64
	two64 = 18446744073709551616.0 // 2^64, first float64 above MaxUint64
)

// String returns the lowercase Go type name ("float64", "int32", ...).
func (d Dtype) String() string {
	if !d.Valid() {
		return "dtype(" + strconv.Itoa(int(d)) + ")"
	}

	return dtypeNames[d]
}

// Valid reports whether d is one of the declared element types.
func (d Dtype) Valid() bool { return d < dtypeCount }

// IsFloat reports whether d is a floating-point type.
func (d Dtype) IsFloat() bool { return d == Float64 || d == Float32 }

// IsInteger reports whether d is a signed or unsigned integer type.
func (d Dtype) IsInteger() bool { return d >= Int8 && d <= Uint64 }

// IsUnsigned reports whether d is an unsigned integer type.
func (d Dtype) IsUnsigned() bool { return d >= Uint8 && d <= Uint64 }

// integerRange returns the representable range [lo, hi] of an integer dtype.
// For Int64 and Uint64 hi is 2^63 / 2^64 and the bound is exclusive, since
// MaxInt64 and MaxUint64 have no exact float64 form.
func (d Dtype) integerRange() (lo, hi float64, hiExclusive bool) {
	switch d {
	case Int8:
		return math.MinInt8, math.MaxInt8, false
	case Int16:
		return math.MinInt16, math.MaxInt16, false
	case Int32:
		return math.MinInt32, math.MaxInt32, false
	case Int64:
		return -two63, two63, true
	case Uint8:
		return 0, math.MaxUint8, false
	case Uint16:
		return 0, math.MaxUint16, false
	case Uint32:
		return 0, math.MaxUint32, false
	case Uint64:
		return 0, two64, true
	}

	return 0, 0, false
}
