// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for Dense matrices.
//
// Purpose:
//   - Neutral elements (NewZeros, NewIdentity, IdentityLike).
//   - Random fixtures (Generate): integer-valued entries in [0, max].
//
// Determinism:
//   - NewZeros/NewIdentity are fully deterministic.
//   - Generate draws from the process-wide math/rand source unless WithSeed or
//     WithRand is supplied; tests must seed explicitly.

package matrix

import (
	"fmt"
	"math"
)

// identityDiag is the value written on the diagonal of I_n.
const identityDiag = 1.0

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0).
//
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = identityDiag
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Generate returns a rows×cols matrix whose entries are round(U·max) with U
// uniform in [0,1), i.e. integer values in [0, max].
// MAIN DESCRIPTION:
//   - Random fixture builder; the source is chosen by options.
//
// Implementation:
//   - Stage 1: validate max ≥ 0 and the shape.
//   - Stage 2: fill in row-major order via Apply (one draw per cell).
//
// Inputs:
//   - rows, cols: positive shape.
//   - max: inclusive upper bound (≥ 0).
//   - opts: WithSeed / WithRand for determinism, WithValidateNaNInf for policy.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidArgument (max < 0).
//
// Determinism:
//   - Identical (seed, shape, max) → identical matrix; draw order is i→j.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Generate(rows, cols, max int, opts ...Option) (*Dense, error) {
	if max < 0 {
		return nil, matrixErrorf(opGenerate, fmt.Errorf("max=%d: %w", max, ErrInvalidArgument))
	}
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}
	limit := float64(max)
	if err = m.Apply(func(_, _ int, _ float64) float64 {
		return math.Round(o.float64() * limit)
	}); err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}

	return m, nil
}
