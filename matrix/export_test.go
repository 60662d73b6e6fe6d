// SPDX-License-Identifier: MIT

package matrix

// SeekPivot exposes the pivot search of the elimination passes to package matrix_test.
func (m *Dense) SeekPivot(row, col int) { m.seekPivot(row, col) }
