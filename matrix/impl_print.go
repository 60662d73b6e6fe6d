// SPDX-License-Identifier: MIT
// Package: matrix
//
// Debug printing. The layout is the classic "newline, then space-terminated
// values" dump: every row starts with '\n' and each value is followed by a
// single space. Use (*Dense).String for the bracketed diagnostic form.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Print writes m to standard output (see Fprint).
func Print(m Matrix) error {
	return Fprint(os.Stdout, m)
}

// Print writes the receiver to standard output.
func (m *Dense) Print() error {
	return Fprint(os.Stdout, m)
}

// Fprint writes m to w, one '\n'-prefixed line per row, each value followed
// by a space. Values use the shortest representation that round-trips.
//
// Errors:
//   - ErrNilMatrix, or the first write/read error encountered.
//
// Complexity: O(r*c).
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Fprint", err)
	}
	bw := bufio.NewWriter(w)
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		bw.WriteByte('\n')
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf("Fprint", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			bw.WriteByte(' ')
		}
	}

	return bw.Flush()
}
