package model

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrBadShape = errors.New("model: number of variables and restrictions must be positive")
	ErrMismatch = errors.New("model: dimension mismatch")
)

// Model is a linear program in standard inequality form:
//
//	maximize   c'x
//	subject to Ax <= b, x >= 0
type Model struct {
	//C objective function coefficients
	C *mat.Dense

	//A restrictions matrix
	A *mat.Dense

	//B restrictions rhs
	B *mat.Dense

	NumRows int
	NumCols int
}

// NewModel allocates a zero model with numRows restrictions over numCols variables.
func NewModel(numRows, numCols int) (*Model, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, errors.Wrapf(ErrBadShape, "got %d restrictions and %d variables", numRows, numCols)
	}
	return &Model{
		C:       mat.NewDense(1, numCols, nil),
		A:       mat.NewDense(numRows, numCols, nil),
		B:       mat.NewDense(numRows, 1, nil),
		NumRows: numRows,
		NumCols: numCols,
	}, nil
}

func (m *Model) SetC(cVec []float64) error {
	if len(cVec) != m.NumCols {
		return errors.Wrapf(ErrMismatch, "objective has %d coefficients, want %d", len(cVec), m.NumCols)
	}

	m.C = mat.NewDense(1, m.NumCols, cVec)

	return nil
}

func (m *Model) SetA(aVec []float64) error {
	if len(aVec) != m.NumCols*m.NumRows {
		return errors.Wrapf(ErrMismatch, "restriction matrix has %d entries, want %d", len(aVec), m.NumCols*m.NumRows)
	}

	m.A = mat.NewDense(m.NumRows, m.NumCols, aVec)

	return nil
}

func (m *Model) SetB(bVec []float64) error {
	if len(bVec) != m.NumRows {
		return errors.Wrapf(ErrMismatch, "rhs has %d entries, want %d", len(bVec), m.NumRows)
	}

	m.B = mat.NewDense(m.NumRows, 1, bVec)

	return nil
}

// SetRow replaces restriction row r with coefficients rVec and right-hand side rhs.
func (m *Model) SetRow(r int, rVec []float64, rhs float64) error {
	if r < 0 || r >= m.NumRows {
		return errors.Errorf("model: row %d does not exist", r)
	}
	if len(rVec) != m.NumCols {
		return errors.Wrapf(ErrMismatch, "row %d has %d coefficients, want %d", r, len(rVec), m.NumCols)
	}

	m.A.SetRow(r, rVec)
	m.B.Set(r, 0, rhs)
	return nil
}

// MultiplyConstraint scales restriction row and its rhs by mul.
func (m *Model) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= m.NumRows {
		return errors.Errorf("model: row %d does not exist", row)
	}

	for col := range m.NumCols {
		m.A.Set(row, col, m.A.At(row, col)*mul)
	}
	m.B.Set(row, 0, m.B.At(row, 0)*mul)
	return nil
}

// Objective returns a copy of the objective coefficients.
func (m *Model) Objective() []float64 {
	return mat.Row(nil, 0, m.C)
}

// Row returns a copy of restriction row r.
func (m *Model) Row(r int) []float64 {
	return mat.Row(nil, r, m.A)
}

func (m *Model) RHS(r int) float64 {
	return m.B.At(r, 0)
}

// Validate checks that C, A and B agree with NumRows and NumCols.
func (m *Model) Validate() error {
	if m.NumRows <= 0 || m.NumCols <= 0 {
		return errors.Wrapf(ErrBadShape, "got %d restrictions and %d variables", m.NumRows, m.NumCols)
	}
	if m.C == nil || m.A == nil || m.B == nil {
		return errors.Wrap(ErrMismatch, "model is missing c, A or b")
	}
	if r, c := m.C.Dims(); r != 1 || c != m.NumCols {
		return errors.Wrapf(ErrMismatch, "c is %dx%d, want 1x%d", r, c, m.NumCols)
	}
	if r, c := m.A.Dims(); r != m.NumRows || c != m.NumCols {
		return errors.Wrapf(ErrMismatch, "A is %dx%d, want %dx%d", r, c, m.NumRows, m.NumCols)
	}
	if r, c := m.B.Dims(); r != m.NumRows || c != 1 {
		return errors.Wrapf(ErrMismatch, "b is %dx%d, want %dx1", r, c, m.NumRows)
	}
	return nil
}

// String renders c, A and b the way they are printed in debug logs.
func (m *Model) String() string {
	return fmt.Sprintf("c = %v\nA = %v\nb = %v",
		mat.Formatted(m.C, mat.Prefix("    "), mat.Squeeze()),
		mat.Formatted(m.A, mat.Prefix("    "), mat.Squeeze()),
		mat.Formatted(m.B.T(), mat.Prefix("    "), mat.Squeeze()),
	)
}
