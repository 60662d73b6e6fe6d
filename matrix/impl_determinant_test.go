// Package matrix_test contains unit tests for the cofactor determinant.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDeterminantKnown(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"I3", IdentityDense(t, 3), 1},
		{"2x2", FromRows(t, []float64{3, 8}, []float64{4, 6}), -14},
		{"3x3", FromRows(t, []float64{6, 1, 1}, []float64{4, -2, 5}, []float64{2, 8, 7}), -306},
		{"zero-row", FromRows(t, []float64{1, 2, 3}, []float64{0, 0, 0}, []float64{7, 8, 9}), 0},
		{"leading-zero", FromRows(t, []float64{0, 2, 0}, []float64{1, 0, 0}, []float64{0, 0, 5}), -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)

			// generic input and method form agree
			gotG, err := matrix.Determinant(hide{tc.m})
			require.NoError(t, err)
			require.InDelta(t, got, gotG, tol)

			gotM, err := tc.m.Determinant()
			require.NoError(t, err)
			require.InDelta(t, got, gotM, tol)
		})
	}
}

// TestDeterminantMatchesGonum compares against LU-based mat.Det.
func TestDeterminantMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			m := RandFilledDense(t, 5, 5, seed)
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			require.InDelta(t, mat.Det(m.ToGonum()), got, 1e-9)
		})
	}
}

// TestDeterminantTranspose checks det(A) == det(Aᵀ).
func TestDeterminantTranspose(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 99)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)

	da, err := matrix.Determinant(a)
	require.NoError(t, err)
	dt, err := matrix.Determinant(at)
	require.NoError(t, err)
	require.InDelta(t, da, dt, 1e-12)
}

func TestDeterminantErrors(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrUnsupportedShape)

	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminantOfGenerated runs on random integer fixtures.
func TestDeterminantOfGenerated(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g, err := matrix.Generate(3, 3, 10, matrix.WithSeed(seed))
		require.NoError(t, err)
		got, err := g.Determinant()
		require.NoError(t, err)
		require.InDelta(t, mat.Det(g.ToGonum()), got, 1e-9)
	}
}

// TestDeterminantZeroTimesInf checks that zero entries of row 0 still expand
// their minor, so a non-finite minor poisons the sum under a loose policy.
func TestDeterminantZeroTimesInf(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 1},
		{1, math.Inf(1), 1},
		{1, 1, 1},
	}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)

	got, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got), "got %v", got)
}
