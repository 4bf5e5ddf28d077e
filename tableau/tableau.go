// Package tableau holds the dense Simplex tableau and the operations that
// rewrite it: pivoting, canonicalization and bookkeeping removal.
//
// Column layout, left to right:
//
//	[ bookkeeping (R) | variables (V) | slacks (R) | rhs ]
//
// Row 0 is the objective row; rows 1..R are the restrictions. The
// bookkeeping block is optional: it is dropped at the Phase-1/Phase-2
// handoff and absent from tableaus built without it.
package tableau

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"q.log/tableau-simplex/model"
)

// Epsilon is the tolerance used for every sign and zero comparison.
const Epsilon = 1e-9

var (
	ErrLayout    = errors.New("tableau: columns do not match the declared layout")
	ErrZeroPivot = errors.New("tableau: pivot entry is zero")
	ErrNoBlock   = errors.New("tableau: no bookkeeping block")
)

type Tableau struct {
	m *mat.Dense

	vars         int
	restrictions int
	bookkeeping  bool
}

// New wraps m as a tableau with the declared number of variables and
// restrictions. The declared counts fix the block boundaries; m is owned by
// the tableau from here on.
func New(vars, restrictions int, bookkeeping bool, m *mat.Dense) (*Tableau, error) {
	if m == nil {
		return nil, errors.Wrap(ErrLayout, "nil matrix")
	}
	rows, cols := m.Dims()
	if vars < 0 || restrictions < 0 || rows < 1 || cols < 2 {
		return nil, errors.Wrapf(ErrLayout, "%dx%d matrix with V=%d R=%d", rows, cols, vars, restrictions)
	}
	t := &Tableau{m: m, vars: vars, restrictions: restrictions, bookkeeping: bookkeeping}
	if t.SlackStart() > t.RHSColumn() {
		return nil, errors.Wrapf(ErrLayout, "%d columns cannot hold V=%d R=%d", cols, vars, restrictions)
	}
	return t, nil
}

// FromRows copies rows into a new tableau. All rows must have equal length.
func FromRows(vars, restrictions int, bookkeeping bool, rows [][]float64) (*Tableau, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrLayout, "empty tableau")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrLayout, "row %d has %d columns, want %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return New(vars, restrictions, bookkeeping, mat.NewDense(len(rows), cols, data))
}

// Assemble builds the initial tableau of lp, bookkeeping block included.
// The objective row is negated. Restrictions with a negative right-hand side
// are multiplied by -1, which leaves their slack at -1 and their rhs at |b|.
// The bookkeeping block records the multiplier, so each bookkeeping column
// starts equal to its slack column.
func Assemble(lp *model.Model) (*Tableau, error) {
	if err := lp.Validate(); err != nil {
		return nil, err
	}
	v, r := lp.NumCols, lp.NumRows
	m := mat.NewDense(1+r, 2*r+v+1, nil)

	for j := range v {
		m.Set(0, r+j, -lp.C.At(0, j))
	}
	for i := range r {
		sign := 1.0
		if lp.RHS(i) < 0 {
			sign = -1
		}
		m.Set(1+i, i, sign)
		for j := range v {
			m.Set(1+i, r+j, sign*lp.A.At(i, j))
		}
		m.Set(1+i, r+v+i, sign)
		m.Set(1+i, 2*r+v, math.Abs(lp.RHS(i)))
	}

	return New(v, r, true, m)
}

// VariableCount derives V from the shape of a tableau matrix.
func VariableCount(m mat.Matrix, bookkeeping bool) (int, error) {
	rows, cols := m.Dims()
	r := rows - 1
	v := cols - 1 - r
	if bookkeeping {
		v -= r
	}
	if r < 0 || v < 0 {
		return 0, errors.Wrapf(ErrLayout, "%dx%d matrix leaves %d variables", rows, cols, v)
	}
	return v, nil
}

// RestrictionCount is the number of rows minus the objective row.
func RestrictionCount(m mat.Matrix) int {
	rows, _ := m.Dims()
	return rows - 1
}

func (t *Tableau) Vars() int            { return t.vars }
func (t *Tableau) Restrictions() int    { return t.restrictions }
func (t *Tableau) HasBookkeeping() bool { return t.bookkeeping }

// Dims returns the number of rows and columns of the underlying matrix.
func (t *Tableau) Dims() (int, int) { return t.m.Dims() }

func (t *Tableau) At(i, j int) float64 { return t.m.At(i, j) }

// Matrix exposes the underlying matrix. Callers must not modify it.
func (t *Tableau) Matrix() mat.Matrix { return t.m }

// VarStart is the index of the first variable column.
func (t *Tableau) VarStart() int {
	if t.bookkeeping {
		return t.restrictions
	}
	return 0
}

// SlackStart is the index of the first slack column.
func (t *Tableau) SlackStart() int { return t.VarStart() + t.vars }

// RHSColumn is the index of the right-hand side column.
func (t *Tableau) RHSColumn() int {
	_, cols := t.m.Dims()
	return cols - 1
}

// IsVariable reports whether column j lies in the variable block.
func (t *Tableau) IsVariable(j int) bool {
	return j >= t.VarStart() && j < t.SlackStart()
}

// IsBookkeeping reports whether column j lies in the bookkeeping block.
func (t *Tableau) IsBookkeeping(j int) bool {
	return t.bookkeeping && j < t.restrictions
}

// Objective returns a copy of row 0.
func (t *Tableau) Objective() []float64 {
	return mat.Row(nil, 0, t.m)
}

// SetObjective overwrites row 0.
func (t *Tableau) SetObjective(row []float64) error {
	_, cols := t.m.Dims()
	if len(row) != cols {
		return errors.Wrapf(ErrLayout, "objective has %d entries, want %d", len(row), cols)
	}
	t.m.SetRow(0, row)
	return nil
}

// Value is the objective value of the current basic solution, read from
// row 0 of the rhs column.
func (t *Tableau) Value() float64 {
	return t.m.At(0, t.RHSColumn())
}

// SlackSegment returns row 0 over the slack block. At an optimum these are
// the dual values of the restrictions.
func (t *Tableau) SlackSegment() []float64 {
	out := make([]float64, t.restrictions)
	rhs := t.RHSColumn()
	for i := range out {
		if j := t.SlackStart() + i; j < rhs {
			out[i] = t.m.At(0, j)
		}
	}
	return out
}

func (t *Tableau) Clone() *Tableau {
	c := *t
	c.m = mat.DenseCopyOf(t.m)
	return &c
}

// StripBookkeeping returns a copy of t without the bookkeeping block.
func (t *Tableau) StripBookkeeping() (*Tableau, error) {
	if !t.bookkeeping {
		return nil, ErrNoBlock
	}
	rows, cols := t.m.Dims()
	m := mat.DenseCopyOf(t.m.Slice(0, rows, t.restrictions, cols))
	return New(t.vars, t.restrictions, false, m)
}

// BasicColumn returns the lowest column of the variable and slack blocks
// holding a unit entry at row and zero on every other restriction row, or
// -1 when there is none. Row 0 is not inspected.
func (t *Tableau) BasicColumn(row int) int {
	rows, _ := t.m.Dims()
	for j := t.VarStart(); j < t.RHSColumn(); j++ {
		if math.Abs(t.m.At(row, j)-1) > Epsilon {
			continue
		}
		unit := true
		for i := 1; i < rows; i++ {
			if i != row && math.Abs(t.m.At(i, j)) > Epsilon {
				unit = false
				break
			}
		}
		if unit {
			return j
		}
	}
	return -1
}

// BasicColumns returns BasicColumn for every restriction row, indexed from 0.
func (t *Tableau) BasicColumns() []int {
	rows, _ := t.m.Dims()
	basis := make([]int, rows-1)
	for i := range basis {
		basis[i] = t.BasicColumn(i + 1)
	}
	return basis
}

// ExtractSolution returns the value of every decision variable in the
// current basic solution.
func (t *Tableau) ExtractSolution() []float64 {
	x := make([]float64, t.vars)
	rows, _ := t.m.Dims()
	for i := 1; i < rows; i++ {
		j := t.BasicColumn(i)
		if j < 0 || !t.IsVariable(j) {
			continue
		}
		x[j-t.VarStart()] = t.m.At(i, t.RHSColumn())
	}
	return x
}

// String formats the tableau for debug output.
func (t *Tableau) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.m, mat.Prefix("    "), mat.Squeeze()))
}

// NegateRow multiplies row by -1 outside the bookkeeping block.
func (t *Tableau) NegateRow(row int) {
	r := t.m.RawRowView(row)
	floats.Scale(-1, r[t.VarStart():])
}

// ResetBookkeeping overwrites the bookkeeping block of the restriction rows
// with the identity.
func (t *Tableau) ResetBookkeeping() error {
	if !t.bookkeeping {
		return ErrNoBlock
	}
	rows, _ := t.m.Dims()
	for i := 1; i < rows; i++ {
		for j := range t.restrictions {
			v := 0.0
			if j == i-1 {
				v = 1
			}
			t.m.Set(i, j, v)
		}
	}
	return nil
}
