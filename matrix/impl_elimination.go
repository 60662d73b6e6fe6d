// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gauss–Jordan style row reduction in place on a *Dense receiver:
//     ForwardElimination clears below each pivot, then hands over to
//     BackElimination, which clears above each pivot walking back up the diagonal.
//   - RowReduce runs the same pair on an independent copy of any Matrix.
//
// Policy:
//   - Pivoting is "first nonzero below" in the pivot column, not max-magnitude.
//   - The row swap skips every column where the candidate row holds 0: such
//     positions are left untouched in BOTH rows. The scan over candidates
//     stops after a candidate whose only nonzero entry is the pivot column;
//     otherwise it keeps going and may swap with several candidates.
//   - A nonzero pivot ≠ 1 is normalized by scaling the whole row with its
//     reciprocal (the pivot cell is pinned to exactly 1). A zero pivot is
//     skipped silently: no division, no error, no singularity diagnosis.
//   - Row operations are plain IEEE arithmetic with no zero shortcuts: on a
//     matrix built WithValidateNaNInf(false), 0·Inf yields NaN.
//   - The boolean result only says whether the routine ran: forward
//     elimination on a non-square receiver returns false and touches nothing.
//
// Both passes are loops over (row, col) rather than recursion, so stack depth
// does not grow with the dimension.

package matrix

import "fmt"

// ForwardElimination reduces the receiver in place, starting at pivot
// (row, col) and advancing one diagonal step per iteration; once the
// diagonal is exhausted it runs BackElimination from the last pivot.
//
// Implementation:
//   - Stage 1: non-square receiver → (false, nil), grid unexamined.
//   - Stage 2: validate 0 ≤ row, col ≤ n.
//   - Stage 3: for each (row, col) with row < n and col < n:
//     seek a nonzero pivot below, normalize the pivot row, clear the column below.
//   - Stage 4: back elimination from (row−1, col−1).
//
// Returns:
//   - true when the pair ran to completion (which it always does for square input).
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrOutOfRange (start index outside [0, n]).
//
// Complexity:
//   - Time O(n³), Space O(1).
func (m *Dense) ForwardElimination(row, col int) (bool, error) {
	if m == nil {
		return false, matrixErrorf(opForward, ErrNilMatrix)
	}
	if m.r != m.c {
		return false, nil
	}
	n := m.r
	if row < 0 || col < 0 || row > n || col > n {
		return false, matrixErrorf(opForward, fmt.Errorf("start (%d,%d): %w", row, col, ErrOutOfRange))
	}

	for ; row < n && col < n; row, col = row+1, col+1 {
		m.seekPivot(row, col)
		m.normalizeRow(row, col)
		m.eliminateBelow(row, col)
	}

	return m.backElimination(row-1, col-1), nil
}

// BackElimination walks pivots (row, col), (row−1, col−1), ... up to the
// first row or column, normalizing each pivot row and clearing the pivot
// column above it. Pivot search looks downward, as in ForwardElimination.
//
// Behavior highlights:
//   - row < 0 or col < 0 is the terminal case and reports (true, nil) at once.
//   - Rectangular receivers are accepted; only the start index is validated.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrOutOfRange (row ≥ Rows() or col ≥ Cols()).
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1).
func (m *Dense) BackElimination(row, col int) (bool, error) {
	if m == nil {
		return false, matrixErrorf(opBack, ErrNilMatrix)
	}
	if row < 0 || col < 0 {
		return true, nil
	}
	if row >= m.r || col >= m.c {
		return false, matrixErrorf(opBack, fmt.Errorf("start (%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.backElimination(row, col), nil
}

// Reduce runs ForwardElimination(0, 0) and reports whether it ran.
// A non-square receiver is left untouched and yields false.
func (m *Dense) Reduce() bool {
	ok, err := m.ForwardElimination(0, 0)

	return ok && err == nil
}

// RowReduce copies m into a fresh *Dense and reduces the copy; m is never mutated.
//
// Returns:
//   - *Dense: the reduced copy (an unchanged copy when m is not square).
//   - bool  : false when m is not square, true otherwise.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func RowReduce(m Matrix) (*Dense, bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, false, matrixErrorf(opRowReduce, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, false, matrixErrorf(opRowReduce, err)
	}

	return d, d.Reduce(), nil
}

// backElimination is the unchecked upward pass; callers guarantee
// row < r and col < c. Always reports success.
func (m *Dense) backElimination(row, col int) bool {
	for ; row >= 0 && col >= 0; row, col = row-1, col-1 {
		m.seekPivot(row, col)
		m.normalizeRow(row, col)
		m.eliminateAbove(row, col)
	}

	return true
}

// seekPivot replaces a zero pivot at (row, col) by swapping with candidate
// rows below that hold a nonzero in col. See swapNonZero for the swap rule.
func (m *Dense) seekPivot(row, col int) {
	if m.data[row*m.c+col] != 0 {
		return
	}
	for r := row + 1; r < m.r; r++ {
		if m.data[r*m.c+col] == 0 {
			continue
		}
		if m.swapNonZero(row, r) {
			break
		}
	}
}

// swapNonZero exchanges rows row and r at every column where row r is
// nonzero; columns where r holds 0 are left as they are in both rows.
// Reports whether r's only nonzero entry was a single column, which ends
// the candidate scan.
func (m *Dense) swapNonZero(row, r int) bool {
	zeros := 0
	a, b := row*m.c, r*m.c
	for c := 0; c < m.c; c++ {
		if m.data[b+c] == 0 {
			zeros++
			continue
		}
		m.data[a+c], m.data[b+c] = m.data[b+c], m.data[a+c]
	}

	return zeros == m.c-1
}

// normalizeRow scales the pivot row so the pivot becomes 1.
// Pivots equal to 0 or 1 are left alone.
func (m *Dense) normalizeRow(row, col int) {
	base := row * m.c
	p := m.data[base+col]
	if p == 0 || p == 1 {
		return
	}
	inv := 1.0 / p
	for c := 0; c < m.c; c++ {
		m.data[base+c] *= inv
	}
	m.data[base+col] = 1 // pin; p*(1/p) may round to 1-ulp
}

// eliminateBelow subtracts a[r][col]·pivotRow from every row r below row.
func (m *Dense) eliminateBelow(row, col int) {
	for r := row + 1; r < m.r; r++ {
		m.subtractScaledRow(r, row, col)
	}
}

// eliminateAbove subtracts a[r][col]·pivotRow from every row r above row.
func (m *Dense) eliminateAbove(row, col int) {
	for r := row - 1; r >= 0; r-- {
		m.subtractScaledRow(r, row, col)
	}
}

// subtractScaledRow performs a[dst] -= a[dst][col] · a[src].
// A zero factor still runs the arithmetic, so 0·Inf turns into NaN.
func (m *Dense) subtractScaledRow(dst, src, col int) {
	d, s := dst*m.c, src*m.c
	fact := m.data[d+col]
	for c := 0; c < m.c; c++ {
		m.data[d+c] -= m.data[s+c] * fact
	}
}
