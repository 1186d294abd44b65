// Package synthdata produces small, reproducible numeric arrays for tests,
// benchmarks and demos: fixtures whose values depend only on the arguments
// that built them.
//
// 🚀 What is in the box?
//
//	• synthetic/: the generators
//		RandomArray: seeded U[offset, offset+scale) values, numpy-compatible stream
//		Gradient2D:  ones → cumsum(rows) → cumsum(cols) → +offset → flips → mod → cast
//		Generator:   locally owned MT19937 source for sharing or deriving streams
//	• ndarray/: the dense row-major container they return
//		Shape, Dtype, casting (strict or saturating), CumSum, Flip, Mod, AllClose,
//		typed extraction via Values[T] and gonum export via Matrix
//
// ✨ Guarantees
//
//   - Determinism: identical arguments give bit-identical arrays, regardless
//     of call history or concurrent callers. No global random state.
//   - Explicit errors: every failure is a sentinel checked with errors.Is
//     (ErrBadShape, ErrInvalidParameter, ErrModuloByZero, ErrCastOverflow).
//   - Pure: no I/O, no hidden goroutines.
//
// Quick example:
//
//	g, _ := synthetic.Gradient2D(ndarray.Shape{3, 3}, synthetic.WithFlipVertical())
//	fmt.Println(g) // [[3, 6, 9], [2, 4, 6], [1, 2, 3]]
//
//	go get github.com/katalvlaran/synthdata
package synthdata
