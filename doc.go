// Package linalg is a small dense linear-algebra toolkit built around a
// row-major float64 matrix.
//
// Everything lives in the matrix subpackage:
//
//	matrix/       Dense storage, arithmetic (Add, Sub, Mul, Scale, Transpose, Power),
//	              Gauss–Jordan row reduction, cofactor determinant, builders,
//	              debug printing and gonum interop
//	cmd/matdemo   a demo binary configured from MATDEMO_* environment variables
//
// Quick start:
//
//	m, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {4, 3}})
//	det, _ := matrix.Determinant(m) // 2
//	ok, _ := m.ForwardElimination(0, 0)
//	fmt.Print(m, ok) // [1, 0] [0, 1] true
//
// The library is single-threaded and synchronous; a Dense value must not be
// mutated from several goroutines at once.
package linalg
