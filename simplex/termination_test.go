package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/tableau-simplex/tableau"
)

const tol = 1e-9

func fromRows(t *testing.T, vars, restrictions int, bookkeeping bool, rows [][]float64) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.FromRows(vars, restrictions, bookkeeping, rows)
	require.NoError(t, err)
	return tb
}

func TestIsUnbounded(t *testing.T) {
	tb := fromRows(t, 2, 3, true, [][]float64{
		{-1, -1, -1, -4, -4, 0, 0, -1, -21},
		{1, 0, 0, 2, 1, 1, 0, -1, 8},
		{0, 1, 0, 1, 2, 0, 1, -1, 8},
		{0, 0, 1, 1, 1, 0, 0, -1, 5},
	})

	assert.True(t, IsUnbounded(tb, 7, tol))
	assert.False(t, IsUnbounded(tb, 3, tol))
	assert.False(t, IsUnbounded(tb, 5, tol), "zero reduced cost is never unbounded")

	column, ok := UnboundedColumn(tb, tol)
	require.True(t, ok)
	assert.Equal(t, 7, column)
}

func TestIsNotUnbounded(t *testing.T) {
	tb := fromRows(t, 2, 3, true, [][]float64{
		{-1, -1, -1, -4, -4, -2, -2, -1, -21},
		{1, 0, 0, 2, 1, 1, 0, 1, 8},
		{0, 1, 0, 1, 2, 0, 1, -1, 8},
		{0, 0, 1, 1, 1, 0, 0, -1, 5},
	})

	_, ok := UnboundedColumn(tb, tol)
	assert.False(t, ok)
}

func TestIsOptimal(t *testing.T) {
	notDone := fromRows(t, 3, 2, true, [][]float64{
		{0, 0, -1, 0, 0, 0, 0, 0},
		{1, 0, 1, 1, 0, 1, 0, 5},
		{0, 1, 0, 0, 1, 0, 1, 7},
	})
	assert.False(t, IsOptimal(notDone, tol))

	done := fromRows(t, 5, 2, false, [][]float64{
		{0, 0, 1, 0, 0, 0, 0, 0},
		{1, 0, 1, 1, 0, 1, 0, 5},
		{0, 1, 0, 0, 1, 0, 1, 7},
	})
	assert.True(t, IsOptimal(done, tol))

	// the rhs column does not count
	negativeValue := fromRows(t, 1, 1, false, [][]float64{
		{0, 0, -4},
		{1, 1, 4},
	})
	assert.True(t, IsOptimal(negativeValue, tol))

	// reduced costs within epsilon of zero do not count either
	nearlyZero := fromRows(t, 1, 1, false, [][]float64{
		{-1e-12, 0, 0},
		{1, 1, 4},
	})
	assert.True(t, IsOptimal(nearlyZero, tol))
}

func TestEnteringColumnPrefersLowestIndexOnTies(t *testing.T) {
	tb := fromRows(t, 3, 1, false, [][]float64{
		{-1, -3, -3, 0, 0},
		{1, 1, 1, 1, 4},
	})

	column, ok := EnteringColumn(tb, tol)
	require.True(t, ok)
	assert.Equal(t, 1, column)
}

func TestLeavingRow(t *testing.T) {
	tb := fromRows(t, 1, 4, false, [][]float64{
		{-1, 0, 0, 0, 0, 0},
		{2, 1, 0, 0, 0, 4},
		{-1, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 2},
		{0, 0, 0, 0, 1, 0},
	})

	// rows 1 and 3 tie on ratio 2; row 2 is negative and row 4 is zero
	row, ok := LeavingRow(tb, 0, tol)
	require.True(t, ok)
	assert.Equal(t, 1, row)

	_, ok = LeavingRow(tb, 4, tol)
	assert.True(t, ok)

	_, ok = LeavingRow(tb, 1, tol)
	assert.True(t, ok)
}

func TestLeavingRowNone(t *testing.T) {
	tb := fromRows(t, 1, 1, false, [][]float64{
		{-1, 0, 0},
		{-2, 1, 4},
	})

	_, ok := LeavingRow(tb, 0, tol)
	assert.False(t, ok)
}

func TestUnboundedCertificate(t *testing.T) {
	tb := fromRows(t, 2, 1, true, [][]float64{
		{0, -1, 0, 0, 0},
		{1, -1, 1, 1, 1},
	})

	assert.Equal(t, []float64{1, 0}, unboundedCertificate(tb, 1))
	assert.Equal(t, []float64{0, 1}, unboundedCertificate(tb, 2))
	assert.Equal(t, []float64{0, 0}, unboundedCertificate(tb, 0), "bookkeeping column")
	assert.Equal(t, []float64{0, 0}, unboundedCertificate(tb, 3), "slack column")
}
