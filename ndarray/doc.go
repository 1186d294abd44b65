// Package ndarray provides a small dense N-dimensional array for numeric
// fixtures.
//
// The package offers:
//
//   - Array: row-major float64 storage with a Shape and an element-type tag
//     (Dtype). At/Set are bounds-checked and return errors, never panic.
//   - Kernels that return fresh arrays: CumSum, Flip/FlipUD/FlipLR,
//     AddScalar, Scale, Mod (floored, numpy np.mod convention).
//   - Casting: Astype with an explicit CastPolicy (strict or saturating) and
//     the generic Values[T] extractor for typed Go slices.
//   - Interop: Matrix exports 2-D arrays to gonum's *mat.Dense.
//
// Errors are package sentinels (ErrBadShape, ErrBadAxis, ErrModuloByZero,
// ErrCastOverflow, ...) wrapped with call-site context; match them with
// errors.Is.
//
// Arrays are not safe for concurrent mutation; kernels only read their
// receiver, so concurrent reads of a shared array are fine.
package ndarray
