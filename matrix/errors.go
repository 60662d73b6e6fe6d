// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with %w)
// and tests MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions; panics are reserved for option constructors (programmer
// errors), see options.go.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites attach context with matrixErrorf/denseErrorf; callers still use
// errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> square requirement
// -> unsupported shape/argument.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a source grid is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and elimination start indices return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a jagged grid.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnsupportedShape marks a shape an operation is not defined for,
	// e.g., the cofactor determinant of a 1×1 matrix.
	ErrUnsupportedShape = errors.New("matrix: operation undefined for shape")

	// ErrInvalidArgument marks a scalar argument outside its domain,
	// e.g., Power with n <= 0 or Generate with a negative max.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)
