// SPDX-License-Identifier: MIT
// Package: synthdata/synthetic
//
// random.go - seeded uniform random array.
//
// Contract:
//   • RandomArray(shape, opts...) returns elements drawn independently from
//     U[offset, offset+scale) in row-major order, then cast to the requested dtype.
//   • Strict determinism per (shape, scale, offset, seed): each call builds its
//     own Generator, so call history and other goroutines cannot perturb it.
//   • O(n) time and memory.

package synthetic

import "github.com/katalvlaran/synthdata/ndarray"

const methodRandomArray = "RandomArray"

// RandomArray returns a deterministic pseudo-random array of the given shape.
//
// Options read: WithScale (default 1), WithOffset (default 0), WithSeed
// (default 0), WithGenerator, WithDtype (default Float64), WithCastPolicy.
//
// Errors:
//   - ErrBadShape for an empty shape or a non-positive dimension.
//   - ErrInvalidParameter for a non-finite scale/offset or a seed outside [0, 2^32).
//   - ErrCastOverflow when the dtype cannot hold a value under CastStrict.
func RandomArray(shape ndarray.Shape, opts ...Option) (*ndarray.Array, error) {
	cfg := newConfig(opts...)

	// Validate everything before touching the generator.
	if err := validateShape(methodRandomArray, shape, 0); err != nil {
		return nil, err
	}
	if err := validateFinite(methodRandomArray, "scale", cfg.scale); err != nil {
		return nil, err
	}
	if err := validateFinite(methodRandomArray, "offset", cfg.offset); err != nil {
		return nil, err
	}

	gen := cfg.gen
	if gen == nil {
		var err error
		if gen, err = NewGenerator(cfg.seed); err != nil {
			return nil, synthErrorf(methodRandomArray, err)
		}
	}

	out, err := gen.Uniform(shape, cfg.scale, cfg.offset)
	if err != nil {
		return nil, synthErrorf(methodRandomArray, err)
	}
	if cfg.dtype == ndarray.Float64 {
		return out, nil
	}
	if out, err = out.Astype(cfg.dtype, cfg.policy); err != nil {
		return nil, synthErrorf(methodRandomArray, err)
	}

	return out, nil
}

// MustRandomArray is like RandomArray but panics on error.
// Intended for package-level fixtures with constant arguments.
func MustRandomArray(shape ndarray.Shape, opts ...Option) *ndarray.Array {
	a, err := RandomArray(shape, opts...)
	if err != nil {
		panic(err)
	}

	return a
}
