// SPDX-License-Identifier: MIT
// Package: matrix
//
// Determinant by cofactor (Laplace) expansion along the first row.
// Deliberately the textbook O(n!) method: no pivoting, no LU, plain float64
// arithmetic without cancellation handling. Zero entries of row 0 still
// expand their minor, so 0·Inf contributes NaN.

package matrix

import (
	"fmt"
	"math"
)

// Determinant returns det(m) by recursive Laplace expansion along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; a 1×1 input is rejected.
//   - Stage 2: copy m into a *Dense (fast flat reads, no aliasing).
//   - Stage 3: 2×2 base case a·d − b·c; otherwise Σᵢ (−1)ⁱ·a[0][i]·det(minor₀ᵢ).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedShape (1×1).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level; recursion depth n−2.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if m.Rows() < 2 {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrUnsupportedShape))
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(d)
}

// Determinant is the method form of the package-level Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// cofactorDet expands a square *Dense (n ≥ 2) along its first row.
func cofactorDet(d *Dense) (float64, error) {
	n := d.r
	if n == 2 {
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	rows := make([]int, n-1) // rows 1..n-1, shared by every minor
	for r := range rows {
		rows[r] = r + 1
	}
	cols := make([]int, n-1)

	sum := ZeroSum
	for i := 0; i < n; i++ {
		a := d.data[i]
		minorCols(cols, n, i)
		minor, err := d.Induced(rows, cols)
		if err != nil {
			return 0, err
		}
		sub, err := cofactorDet(minor)
		if err != nil {
			return 0, err
		}
		sum += math.Pow(-1, float64(i)) * a * sub
	}

	return sum, nil
}

// minorCols fills dst with 0..n-1 minus skip, in order.
func minorCols(dst []int, n, skip int) {
	k := 0
	for c := 0; c < n; c++ {
		if c == skip {
			continue
		}
		dst[k] = c
		k++
	}
}
