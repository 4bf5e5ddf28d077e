package tableau

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Pivot performs Gauss-Jordan elimination around (row, column): the pivot
// row is scaled so the entry becomes 1 and the column is cleared from every
// other row, row 0 included. The sign of the entry is not checked.
func (t *Tableau) Pivot(column, row int) error {
	rows, cols := t.m.Dims()
	if row < 0 || row >= rows || column < 0 || column >= cols {
		return errors.Errorf("tableau: pivot (%d, %d) out of range for %dx%d", row, column, rows, cols)
	}
	p := t.m.At(row, column)
	if p == 0 {
		return errors.Wrapf(ErrZeroPivot, "at (%d, %d)", row, column)
	}

	pr := t.m.RawRowView(row)
	floats.Scale(1/p, pr)
	pr[column] = 1

	for i := range rows {
		if i == row {
			continue
		}
		r := t.m.RawRowView(i)
		f := r[column]
		if f == 0 {
			continue
		}
		floats.AddScaled(r, -f, pr)
		r[column] = 0
	}
	return nil
}
