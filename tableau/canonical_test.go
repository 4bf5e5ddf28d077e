package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestCanonicalize(t *testing.T) {
	tb := mustFromRows(t, 2, 3, true, [][]float64{
		{0, 0, 0, 0, 0, 1, 1, 1, 0},
		{1, 0, 0, 2, 1, 1, 0, 0, 8},
		{0, 1, 0, 1, 2, 0, 1, 0, 8},
		{0, 0, 1, 1, 1, 0, 0, 1, 5},
	})

	assert.Equal(t, []int{5, 6, 7}, tb.BasicColumns())
	tb.Canonicalize(tb.BasicColumns())

	expected := dense([][]float64{
		{-1, -1, -1, -4, -4, 0, 0, 0, -21},
		{1, 0, 0, 2, 1, 1, 0, 0, 8},
		{0, 1, 0, 1, 2, 0, 1, 0, 8},
		{0, 0, 1, 1, 1, 0, 0, 1, 5},
	})
	assert.True(t, mat.EqualApprox(expected, tb.Matrix(), tol))
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	tb := mustFromRows(t, 2, 3, true, [][]float64{
		{0, 0, 0, 3, -2, 1, 1, 1, 0},
		{1, 0, 0, 2, 1, 1, 0, 0, 8},
		{0, 1, 0, 1, 2, 0, 1, 0, 8},
		{0, 0, 1, 1, 1, 0, 0, 1, 5},
	})
	basis := tb.BasicColumns()

	tb.Canonicalize(basis)
	once := mat.DenseCopyOf(tb.Matrix())
	tb.Canonicalize(basis)

	assert.True(t, mat.Equal(once, tb.Matrix()))
}

func TestCanonicalizeSkipsMissingBasis(t *testing.T) {
	tb := mustFromRows(t, 1, 2, false, [][]float64{
		{1, 1, 1, 0},
		{1, 1, 0, 2},
		{2, 0, 1, 3},
	})

	tb.Canonicalize([]int{1, -1})

	assert.True(t, mat.EqualApprox(dense([][]float64{
		{0, 0, 1, -2},
		{1, 1, 0, 2},
		{2, 0, 1, 3},
	}), tb.Matrix(), tol))
}
