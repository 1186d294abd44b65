// SPDX-License-Identifier: MIT
// Package: synthdata/synthetic
//
// options.go - functional options and the resolved per-call configuration.
//
// Contract:
//   • Option is func(*config); options apply in order, last wins.
//   • RandomArray and Gradient2D share one Option type. Each generator reads
//     only the knobs it documents; the rest are ignored (e.g. WithSeed for
//     Gradient2D, WithFlip* for RandomArray).
//   • Option constructors panic only on programmer error (nil generator,
//     unknown dtype/policy). Numeric values are validated by the generators
//     and reported as errors, so WithModulo(0) yields ErrModuloByZero.
//   • No hidden globals; every call resolves a fresh config.

package synthetic

import "github.com/katalvlaran/synthdata/ndarray"

// Deterministic defaults (single source of truth).
const (
	DefaultScale  = 1.0 // width of the uniform interval
	DefaultOffset = 0.0 // lower bound of the uniform interval / gradient shift
	DefaultSeed   = 0   // numpy-compatible default seed
)

// Option customizes a generator call.
type Option func(*config)

// config is the resolved per-call configuration, passed by value.
type config struct {
	scale  float64
	offset float64
	seed   int64
	gen    *Generator // shared stream; nil means "fresh generator from seed"

	dtype    ndarray.Dtype
	dtypeSet bool
	policy   ndarray.CastPolicy

	flipVertical   bool
	flipHorizontal bool

	mod    float64
	modSet bool
}

// newConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		scale:  DefaultScale,
		offset: DefaultOffset,
		seed:   DefaultSeed,
		dtype:  ndarray.Float64,
		policy: ndarray.DefaultCastPolicy,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScale sets the width of the uniform interval [offset, offset+scale).
// RandomArray only.
func WithScale(scale float64) Option {
	return func(c *config) { c.scale = scale }
}

// WithOffset sets the lower bound of the uniform interval (RandomArray) or
// the value added to every gradient element before flips (Gradient2D).
func WithOffset(offset float64) Option {
	return func(c *config) { c.offset = offset }
}

// WithSeed seeds the per-call generator. RandomArray only.
// Seeds outside [0, 2^32) are rejected by the generator with ErrInvalidParameter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithGenerator draws from g instead of a fresh generator; consecutive calls
// sharing g continue one stream. WithSeed is ignored when set. RandomArray only.
// Panics on nil.
func WithGenerator(g *Generator) Option {
	if g == nil {
		panic("synthetic: WithGenerator(nil)")
	}
	return func(c *config) { c.gen = g }
}

// WithDtype casts the final array to d. Panics on an unknown dtype.
func WithDtype(d ndarray.Dtype) Option {
	if !d.Valid() {
		panic("synthetic: WithDtype: unknown dtype " + d.String())
	}
	return func(c *config) {
		c.dtype = d
		c.dtypeSet = true
	}
}

// WithCastPolicy selects strict (default) or saturating casts for WithDtype.
// Panics on an unknown policy.
func WithCastPolicy(p ndarray.CastPolicy) Option {
	if p != ndarray.CastStrict && p != ndarray.CastSaturate {
		panic("synthetic: WithCastPolicy: unknown policy " + p.String())
	}
	return func(c *config) { c.policy = p }
}

// WithFlipVertical reverses the gradient's rows (top-bottom). Gradient2D only.
func WithFlipVertical() Option {
	return func(c *config) { c.flipVertical = true }
}

// WithFlipHorizontal reverses the gradient's columns (left-right). Gradient2D only.
func WithFlipHorizontal() Option {
	return func(c *config) { c.flipHorizontal = true }
}

// WithModulo replaces every gradient element by its floored remainder
// modulo m, after offset and flips. Gradient2D only.
func WithModulo(m float64) Option {
	return func(c *config) {
		c.mod = m
		c.modSet = true
	}
}
