// SPDX-License-Identifier: MIT
// Package: synthdata/synthetic
//
// errors.go - sentinel errors for the synthetic package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Array-level failures reuse the ndarray sentinels (aliased below) so a
//     caller needs a single import to classify any generator error.
//   • Generators never panic; only WithX option constructors (programmer
//     error) and Must* helpers do.

package synthetic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/synthdata/ndarray"
)

// ErrInvalidParameter indicates a scalar parameter the generators cannot use:
// a non-finite scale/offset/modulo, or a seed outside [0, 2^32).
var ErrInvalidParameter = errors.New("synthetic: invalid parameter")

// ErrBadShape indicates a shape with the wrong rank or a non-positive
// dimension. Alias of ndarray.ErrBadShape.
var ErrBadShape = ndarray.ErrBadShape

// ErrModuloByZero is returned by Gradient2D for WithModulo(0).
// Alias of ndarray.ErrModuloByZero.
var ErrModuloByZero = ndarray.ErrModuloByZero

// ErrCastOverflow is returned when the requested dtype cannot hold a
// generated value under CastStrict. Alias of ndarray.ErrCastOverflow.
var ErrCastOverflow = ndarray.ErrCastOverflow

// synthErrorf wraps err with the generator name: "<Method>: <err>".
func synthErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// paramErrorf reports an ErrInvalidParameter with a formatted detail.
func paramErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidParameter)
}
