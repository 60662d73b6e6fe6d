// SPDX-License-Identifier: MIT
// Package: matrix
//
// Interop with gonum.org/v1/gonum/mat. Conversions always copy, so a Dense
// never shares storage with a gonum matrix.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of the receiver.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// FromGonum copies any gonum matrix into a new *Dense.
// The default numeric policy applies: NaN/±Inf entries are rejected.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrInvalidDimensions (empty src), ErrNaNInf.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	if g, ok := src.(*mat.Dense); ok && g == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opGonum, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}
