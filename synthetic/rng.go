// SPDX-License-Identifier: MIT
// Package synthetic - seeded generator used by RandomArray.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms and call history.
//   - Locality: every Generator owns its state; nothing touches math/rand's
//     global source.
//   - Compatibility: MT19937 seeded with init_genrand and 53-bit doubles built
//     from two 32-bit words, the scheme numpy's legacy np.random.seed/rand use.
//     Seed 0 therefore yields 0.5488135039273248, 0.7151893663724195, ...
//
// Concurrency:
//   - A Generator is NOT goroutine-safe. Give each goroutine its own, or use
//     Derive to split independent streams during setup.
package synthetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/katalvlaran/synthdata/ndarray"
)

const (
	methodNewGenerator = "NewGenerator"
	methodUniform      = "Generator.Uniform"
)

// 53-bit double construction constants: (a*2^26 + b) / 2^53 with a, b the
// top 27 and 26 bits of two consecutive 32-bit outputs.
const (
	twoPow26 = 67108864.0
	twoPow53 = 9007199254740992.0
)

// Generator is a locally owned, explicitly seeded uniform source.
type Generator struct {
	src  *prng.MT19937
	seed int64
	keys []uint32 // non-nil for derived streams (seeded from keys, not seed)
}

// NewGenerator returns a Generator seeded with seed.
// Errors: ErrInvalidParameter when seed is outside [0, 2^32).
// Complexity: O(624) state initialisation.
func NewGenerator(seed int64) (*Generator, error) {
	if err := validateSeed(methodNewGenerator, seed); err != nil {
		return nil, err
	}
	g := &Generator{src: prng.NewMT19937(), seed: seed}
	g.Reset()

	return g, nil
}

// Seed returns the seed the generator was built from. For derived streams
// it is the mixed 64-bit stream seed.
func (g *Generator) Seed() int64 { return g.seed }

// Reset rewinds the generator to the state right after construction.
func (g *Generator) Reset() {
	if g.keys != nil {
		g.src.SeedFromKeys(g.keys)
		return
	}
	g.src.Seed(uint64(g.seed))
}

// Uint32 returns the next raw 32-bit output.
func (g *Generator) Uint32() uint32 { return g.src.Uint32() }

// Float64 returns a uniform value in [0, 1) with 53 bits of precision.
// It consumes two 32-bit outputs.
func (g *Generator) Float64() float64 {
	a := g.src.Uint32() >> 5
	b := g.src.Uint32() >> 6

	return (float64(a)*twoPow26 + float64(b)) / twoPow53
}

// Fill writes successive Float64 draws into dst in index order.
func (g *Generator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = g.Float64()
	}
}

// Uniform returns a float64 array of the given shape whose elements are
// offset + scale*u, u drawn by Float64 in row-major order. For scale > 0 the
// values lie in [offset, offset+scale), up to rounding at the upper bound.
// Errors: ErrBadShape, ErrInvalidParameter for non-finite scale/offset.
// Complexity: O(n).
func (g *Generator) Uniform(shape ndarray.Shape, scale, offset float64) (*ndarray.Array, error) {
	if err := validateShape(methodUniform, shape, 0); err != nil {
		return nil, err
	}
	if err := validateFinite(methodUniform, "scale", scale); err != nil {
		return nil, err
	}
	if err := validateFinite(methodUniform, "offset", offset); err != nil {
		return nil, err
	}

	buf := make([]float64, shape.Size())
	g.Fill(buf)
	floats.Scale(scale, buf)     // scale * u
	floats.AddConst(offset, buf) // offset + scale*u

	return ndarray.FromSlice(shape, buf)
}

// Derive returns an independent generator for stream id. It consumes two
// outputs of g, so repeated calls with the same id still yield distinct
// children. Call it during setup, not in hot loops.
func (g *Generator) Derive(stream uint64) *Generator {
	parent := uint64(g.src.Uint32())<<32 | uint64(g.src.Uint32())
	mixed := deriveSeed(parent, stream)
	child := &Generator{
		src:  prng.NewMT19937(),
		seed: int64(mixed),
		keys: []uint32{uint32(mixed), uint32(mixed >> 32)},
	}
	child.Reset()

	return child
}

// deriveSeed mixes a parent value and a stream id with the SplitMix64
// finalizer so nearby inputs give unrelated outputs.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
