// Package matrix provides dense real-valued matrices and the classic
// textbook operations on them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and
//     exclusive ownership of its storage (Grid returns a copy).
//   - Element-wise and algebraic kernels: Add, Sub, Mul, Scale, Transpose, Power.
//   - Gauss–Jordan style row reduction: ForwardElimination followed by
//     BackElimination, in place on a Dense receiver, or RowReduce on a copy.
//   - Determinant by cofactor (Laplace) expansion along the first row.
//   - Builders: NewIdentity, NewZeros, Generate (integer-valued random entries).
//   - Debug printing (Print/Fprint) and gonum interop (ToGonum/FromGonum).
//
// Pivoting in the elimination pair is "first nonzero below", not
// max-magnitude, and a singular input is not diagnosed: zero pivots are
// skipped silently. The boolean result of elimination only reports whether
// the routine ran (false for non-square input).
//
// All kernels return sentinel errors from errors.go; match them with errors.Is.
package matrix
