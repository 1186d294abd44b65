// SPDX-License-Identifier: MIT
// Package: synthdata/synthetic
//
// gradient.go - deterministic 2-D integrated gradient.
//
// Pipeline (order is part of the contract):
//   1. ones(shape)
//   2. cumulative sum along rows (axis 0), then along columns (axis 1)
//      ⇒ element (i,j) = (i+1)*(j+1)
//   3. + offset
//   4. flip rows            (WithFlipVertical)
//   5. flip columns         (WithFlipHorizontal)
//   6. floored modulo       (WithModulo)
//   7. cast                 (WithDtype)
//
// Contract:
//   • Pure: no generator, no shared state; safe for concurrent use.
//   • O(rows*cols) time and memory.

package synthetic

import "github.com/katalvlaran/synthdata/ndarray"

const methodGradient2D = "Gradient2D"

// Gradient2D returns the integrated gradient for a rows×cols shape.
//
// Options read: WithOffset, WithFlipVertical, WithFlipHorizontal,
// WithModulo, WithDtype (absent ⇒ Float64 as produced), WithCastPolicy.
//
// Errors:
//   - ErrBadShape unless shape has exactly two positive dimensions.
//   - ErrInvalidParameter for a non-finite offset or modulo.
//   - ErrModuloByZero for WithModulo(0).
//   - ErrCastOverflow when the dtype cannot hold a value under CastStrict.
func Gradient2D(shape ndarray.Shape, opts ...Option) (*ndarray.Array, error) {
	cfg := newConfig(opts...)

	if err := validateShape(methodGradient2D, shape, 2); err != nil {
		return nil, err
	}
	if err := validateFinite(methodGradient2D, "offset", cfg.offset); err != nil {
		return nil, err
	}
	if cfg.modSet {
		if cfg.mod == 0 {
			return nil, synthErrorf(methodGradient2D, ErrModuloByZero)
		}
		if err := validateFinite(methodGradient2D, "modulo", cfg.mod); err != nil {
			return nil, err
		}
	}

	out, err := integratedOnes(shape)
	if err != nil {
		return nil, synthErrorf(methodGradient2D, err)
	}
	if out, err = out.AddScalar(cfg.offset); err != nil {
		return nil, synthErrorf(methodGradient2D, err)
	}
	if cfg.flipVertical {
		if out, err = out.FlipUD(); err != nil {
			return nil, synthErrorf(methodGradient2D, err)
		}
	}
	if cfg.flipHorizontal {
		if out, err = out.FlipLR(); err != nil {
			return nil, synthErrorf(methodGradient2D, err)
		}
	}
	if cfg.modSet {
		if out, err = out.Mod(cfg.mod); err != nil {
			return nil, synthErrorf(methodGradient2D, err)
		}
	}
	if cfg.dtypeSet {
		if out, err = out.Astype(cfg.dtype, cfg.policy); err != nil {
			return nil, synthErrorf(methodGradient2D, err)
		}
	}

	return out, nil
}

// integratedOnes builds ones(shape).cumsum(0).cumsum(1).
func integratedOnes(shape ndarray.Shape) (*ndarray.Array, error) {
	ones, err := ndarray.Ones(shape)
	if err != nil {
		return nil, err
	}
	rows, err := ones.CumSum(0)
	if err != nil {
		return nil, err
	}

	return rows.CumSum(1)
}

// MustGradient2D is like Gradient2D but panics on error.
func MustGradient2D(shape ndarray.Shape, opts ...Option) *ndarray.Array {
	a, err := Gradient2D(shape, opts...)
	if err != nil {
		panic(err)
	}

	return a
}
