// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Element-wise and per-axis kernels used to compose synthetic arrays:
//     CumSum, Flip (FlipUD/FlipLR), AddScalar, Scale, Mod, plus comparison helpers.
//   - Every kernel returns a fresh Array; the receiver is never mutated.
//
// Axis addressing:
//   - For axis k, the buffer splits into outer = Π shape[:k] blocks of
//     n = shape[k] slabs, each slab holding inner = Π shape[k+1:] contiguous elements.
//   - inner == 1 (last axis) takes the gonum floats fast path on contiguous rows.
//
// Dtype:
//   - Arithmetic kernels (CumSum, AddScalar, Scale, Mod) produce Float64 arrays.
//   - Flip preserves the dtype.

package ndarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxCumSum    = "CumSum"
	ctxFlip      = "Flip"
	ctxAddScalar = "AddScalar"
	ctxScale     = "Scale"
	ctxMod       = "Mod"
	ctxAllClose  = "AllClose"
)

// axisLayout returns (outer, n, inner) for a normalized axis.
func (a *Array) axisLayout(axis int) (outer, n, inner int) {
	n = a.shape[axis]
	inner = a.strides[axis]
	outer = len(a.data) / (n * inner)

	return outer, n, inner
}

// CumSum returns the cumulative sum along axis (negative axes count from the end).
//
//	out[..., i, ...] = Σ_{t ≤ i} a[..., t, ...]
//
// Errors: ErrBadAxis.
// Complexity: O(n) time and space; fixed outer→i→inner order.
func (a *Array) CumSum(axis int) (*Array, error) {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxCumSum, err)
	}
	out := a.like()
	out.dtype = Float64
	outer, n, inner := a.axisLayout(ax)
	block := n * inner

	var o, i, q, base int
	if inner == 1 {
		for o = 0; o < outer; o++ {
			base = o * block
			floats.CumSum(out.data[base:base+n], a.data[base:base+n])
		}
		return out, nil
	}

	for o = 0; o < outer; o++ {
		base = o * block
		copy(out.data[base:base+inner], a.data[base:base+inner]) // first slab seeds the running sum
		for i = 1; i < n; i++ {
			cur := base + i*inner
			prev := cur - inner
			for q = 0; q < inner; q++ {
				out.data[cur+q] = out.data[prev+q] + a.data[cur+q]
			}
		}
	}

	return out, nil
}

// Flip returns a copy with the order of elements along axis reversed.
// Errors: ErrBadAxis.
// Complexity: O(n).
func (a *Array) Flip(axis int) (*Array, error) {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxFlip, err)
	}
	out := a.like()
	outer, n, inner := a.axisLayout(ax)
	block := n * inner

	var o, i, base int
	if inner == 1 {
		copy(out.data, a.data)
		for o = 0; o < outer; o++ {
			base = o * block
			floats.Reverse(out.data[base : base+n])
		}
		return out, nil
	}

	for o = 0; o < outer; o++ {
		base = o * block
		for i = 0; i < n; i++ {
			dst := base + i*inner
			src := base + (n-1-i)*inner
			copy(out.data[dst:dst+inner], a.data[src:src+inner])
		}
	}

	return out, nil
}

// FlipUD reverses the rows (axis 0), top-bottom mirror.
func (a *Array) FlipUD() (*Array, error) { return a.Flip(0) }

// FlipLR reverses the columns (axis 1) of an array with ndim ≥ 2, left-right mirror.
func (a *Array) FlipLR() (*Array, error) {
	if len(a.shape) < 2 {
		return nil, fmt.Errorf("%s: FlipLR needs ndim ≥ 2, got %d: %w", ctxFlip, len(a.shape), ErrRankMismatch)
	}

	return a.Flip(1)
}

// AddScalar returns a + c element-wise.
// Errors: ErrNaNInf for a non-finite c.
func (a *Array) AddScalar(c float64) (*Array, error) {
	if !isFinite(c) {
		return nil, arrayErrorf(ctxAddScalar, ErrNaNInf)
	}
	out := a.Clone()
	out.dtype = Float64
	floats.AddConst(c, out.data)

	return out, nil
}

// Scale returns c * a element-wise.
// Errors: ErrNaNInf for a non-finite c.
func (a *Array) Scale(c float64) (*Array, error) {
	if !isFinite(c) {
		return nil, arrayErrorf(ctxScale, ErrNaNInf)
	}
	out := a.Clone()
	out.dtype = Float64
	floats.Scale(c, out.data)

	return out, nil
}

// Mod returns the floored remainder of every element by divisor d.
// The result has the sign of d (non-negative for d > 0); an exact zero
// remainder is a zero carrying d's sign.
//
//	r = fmod(x, d); if r != 0 && sign(r) != sign(d) { r += d }
//
// Errors: ErrModuloByZero for d == 0, ErrNaNInf for a non-finite d.
// Complexity: O(n).
func (a *Array) Mod(d float64) (*Array, error) {
	if d == 0 {
		return nil, arrayErrorf(ctxMod, ErrModuloByZero)
	}
	if !isFinite(d) {
		return nil, arrayErrorf(ctxMod, ErrNaNInf)
	}
	out := a.like()
	out.dtype = Float64
	for k, x := range a.data {
		out.data[k] = flooredMod(x, d)
	}

	return out, nil
}

// flooredMod is the scalar kernel behind Mod; d must be non-zero and finite.
func flooredMod(x, d float64) float64 {
	r := math.Mod(x, d)
	if r == 0 {
		return math.Copysign(0, d)
	}
	if (r < 0) != (d < 0) {
		r += d
	}

	return r
}

// AllClose reports whether a and b share a shape and every pair of elements
// is equal within tol (absolute or relative, see floats.EqualWithinAbsOrRel).
// Errors: ErrNilArray, ErrDimensionMismatch.
func AllClose(a, b *Array, tol float64) (bool, error) {
	if a == nil || b == nil {
		return false, arrayErrorf(ctxAllClose, ErrNilArray)
	}
	if !a.shape.Equal(b.shape) {
		return false, fmt.Errorf("%s: %v vs %v: %w", ctxAllClose, a.shape, b.shape, ErrDimensionMismatch)
	}

	return floats.EqualApprox(a.data, b.data, math.Abs(tol)), nil
}

// Equal reports whether a and b have the same shape, dtype and bit-identical data.
// Two nil arrays are equal.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return false
	}
	for k := range a.data {
		if math.Float64bits(a.data[k]) != math.Float64bits(b.data[k]) {
			return false
		}
	}

	return true
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
