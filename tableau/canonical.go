package tableau

import "gonum.org/v1/gonum/floats"

// Canonicalize subtracts from row 0 the multiple of each restriction row that
// zeroes row 0 on that row's basic column. basis[i] is the basic column of
// row i+1; negative entries are skipped. Rows whose basic column already has
// a zero objective coefficient are left untouched, so a canonical tableau is
// not modified.
func (t *Tableau) Canonicalize(basis []int) {
	obj := t.m.RawRowView(0)
	for i, j := range basis {
		if j < 0 {
			continue
		}
		f := obj[j]
		if f == 0 {
			continue
		}
		floats.AddScaled(obj, -f, t.m.RawRowView(i+1))
		obj[j] = 0
	}
}
