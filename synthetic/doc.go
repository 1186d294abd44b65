// Package synthetic generates deterministic numeric arrays for test fixtures.
//
// Two independent generators are provided:
//
//   - RandomArray: seeded uniform noise on [offset, offset+scale), any rank.
//   - Gradient2D: the 2-D prefix sum of ones, (i+1)*(j+1), with an optional
//     offset, vertical/horizontal flips and a floored modulo.
//
// Both take functional options (WithScale, WithOffset, WithSeed, WithDtype,
// WithFlipVertical, WithFlipHorizontal, WithModulo, ...) and return a fresh
// *ndarray.Array owned by the caller.
//
// Determinism:
//
//	RandomArray never touches global random state. Each call seeds its own
//	Generator (MT19937, numpy-compatible), so equal arguments always give
//	bit-identical arrays and concurrent calls do not interfere. Pass
//	WithGenerator to continue one explicit stream across calls instead.
//
// Quick example:
//
//	g, _ := synthetic.Gradient2D([]int{3, 3}, synthetic.WithFlipVertical())
//	fmt.Println(g) // [[3, 6, 9], [2, 4, 6], [1, 2, 3]]
package synthetic
