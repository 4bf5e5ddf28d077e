package simplex

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"q.log/tableau-simplex/tableau"
)

// needsPhase1 reports whether the tableau lacks a feasible starting basis:
// some rhs is negative or some row has no unit column.
func needsPhase1(t *tableau.Tableau, eps float64) bool {
	rows, _ := t.Dims()
	rhs := t.RHSColumn()
	for i := 1; i < rows; i++ {
		if t.At(i, rhs) < -eps || t.BasicColumn(i) < 0 {
			return true
		}
	}
	return false
}

// setupPhase1 turns the tableau into the auxiliary problem. Rows with a
// negative rhs are negated outside the bookkeeping block, the bookkeeping
// block becomes the identity of artificial variables, and rows without a unit
// column take their artificial as basic. The objective is the sum of the
// artificials, canonicalized against that basis.
func (s *Solver) setupPhase1() error {
	t := s.t
	if !t.HasBookkeeping() {
		return errors.Wrap(tableau.ErrNoBlock, "simplex: phase 1 needs the bookkeeping block for artificial variables")
	}
	rows, cols := t.Dims()
	r := t.Restrictions()
	if rows-1 != r {
		return errors.Wrapf(tableau.ErrLayout, "simplex: %d restriction rows, declared %d", rows-1, r)
	}

	s.objective = t.Objective()

	rhs := t.RHSColumn()
	for i := 1; i < rows; i++ {
		if t.At(i, rhs) < -s.cfg.epsilon {
			t.NegateRow(i)
		}
	}
	if err := t.ResetBookkeeping(); err != nil {
		return err
	}

	s.basis = make([]int, r)
	artificials := 0
	for i := range s.basis {
		s.basis[i] = t.BasicColumn(i + 1)
		if s.basis[i] < 0 {
			s.basis[i] = i
			artificials++
		}
	}

	aux := make([]float64, cols)
	for j := range r {
		aux[j] = 1
	}
	if err := t.SetObjective(aux); err != nil {
		return err
	}
	t.Canonicalize(s.basis)

	s.log.WithFields(logrus.Fields{
		"artificials":   artificials,
		"infeasibility": -t.Value(),
	}).Debug("phase 1 set up")
	return nil
}

// finishPhase1 checks the auxiliary optimum. A positive infeasibility ends
// the solve; otherwise artificials still basic at zero are pivoted out, the
// bookkeeping block is dropped and the true objective is reinstalled.
func (s *Solver) finishPhase1() error {
	t := s.t
	eps := s.cfg.epsilon

	if infeasibility := -t.Value(); math.Abs(infeasibility) > eps {
		return &InfeasibleError{
			Infeasibility: infeasibility,
			Certificate:   t.SlackSegment(),
		}
	}

	if err := s.driveOutArtificials(); err != nil {
		return err
	}

	stripped, err := t.StripBookkeeping()
	if err != nil {
		return err
	}
	r := t.Restrictions()
	for i := range s.basis {
		s.basis[i] -= r
	}
	if err := stripped.SetObjective(s.objective[r:]); err != nil {
		return err
	}
	s.t = stripped
	return nil
}

// driveOutArtificials pivots every artificial left in the basis on the first
// non-zero entry of its row outside the bookkeeping block. Such rows have a
// zero rhs, so any sign keeps the basis feasible.
func (s *Solver) driveOutArtificials() error {
	t := s.t
	for i, j := range s.basis {
		if !t.IsBookkeeping(j) {
			continue
		}
		row := i + 1
		column := -1
		for k := t.VarStart(); k < t.RHSColumn(); k++ {
			if math.Abs(t.At(row, k)) > s.cfg.epsilon {
				column = k
				break
			}
		}
		if column < 0 {
			return errors.Errorf("simplex: artificial %d cannot leave the basis, row %d is empty", j, row)
		}
		if err := t.Pivot(column, row); err != nil {
			return err
		}
		s.basis[i] = column
		s.log.WithFields(logrus.Fields{
			"artificial": j,
			"entering":   column,
			"leaving":    row,
		}).Debug("artificial driven out")
	}
	return nil
}

// setupPhase2 canonicalizes the true objective against the current basis.
func (s *Solver) setupPhase2() {
	if s.basis == nil {
		s.basis = s.t.BasicColumns()
	}
	s.t.Canonicalize(s.basis)
	s.log.WithField("value", s.t.Value()).Debug("phase 2 set up")
}
