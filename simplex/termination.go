package simplex

import (
	"math"

	"q.log/tableau-simplex/tableau"
)

// IsOptimal reports whether no reduced cost in row 0 is negative.
func IsOptimal(t *tableau.Tableau, eps float64) bool {
	_, ok := EnteringColumn(t, eps)
	return !ok
}

// IsUnbounded reports whether column has a negative reduced cost and no
// positive entry on any restriction row.
func IsUnbounded(t *tableau.Tableau, column int, eps float64) bool {
	if t.At(0, column) >= -eps {
		return false
	}
	rows, _ := t.Dims()
	for i := 1; i < rows; i++ {
		if t.At(i, column) > eps {
			return false
		}
	}
	return true
}

// UnboundedColumn returns the lowest column for which IsUnbounded holds.
func UnboundedColumn(t *tableau.Tableau, eps float64) (int, bool) {
	for j := range t.RHSColumn() {
		if IsUnbounded(t, j, eps) {
			return j, true
		}
	}
	return -1, false
}

// EnteringColumn picks the column with the most negative reduced cost,
// lowest index first on ties. It returns false when the tableau is optimal.
func EnteringColumn(t *tableau.Tableau, eps float64) (int, bool) {
	best, lowest := -1, -eps
	for j := range t.RHSColumn() {
		if v := t.At(0, j); v < lowest {
			best, lowest = j, v
		}
	}
	return best, best >= 0
}

// LeavingRow runs the minimum ratio test on column over rows with a strictly
// positive entry, lowest row first on ties.
func LeavingRow(t *tableau.Tableau, column int, eps float64) (int, bool) {
	rows, _ := t.Dims()
	rhs := t.RHSColumn()
	best, lowest := -1, math.Inf(1)
	for i := 1; i < rows; i++ {
		a := t.At(i, column)
		if a <= eps {
			continue
		}
		if ratio := t.At(i, rhs) / a; ratio < lowest-eps {
			best, lowest = i, ratio
		}
	}
	return best, best >= 0
}

// unboundedCertificate marks column inside the variable block. Columns of the
// slack or bookkeeping blocks give the zero vector.
func unboundedCertificate(t *tableau.Tableau, column int) []float64 {
	cert := make([]float64, t.Vars())
	if t.IsVariable(column) {
		cert[column-t.VarStart()] = 1
	}
	return cert
}
