// Package simplex solves linear programs in standard inequality form,
//
//	maximize   c'x
//	subject to Ax <= b, x >= 0,
//
// with the two-phase tableau Simplex method. Entering columns follow
// Dantzig's rule and leaving rows the minimum ratio test, both breaking ties
// on the lowest index, so a solve is deterministic.
package simplex

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"q.log/tableau-simplex/model"
	"q.log/tableau-simplex/tableau"
)

// State is the position of a Solver in the two-phase protocol.
type State int

const (
	Phase1Setup State = iota
	Phase1Running
	Phase1Done
	Infeasible
	Phase2Setup
	Phase2Running
	Unbounded
	Optimal
	Aborted
)

var stateNames = [...]string{
	Phase1Setup:   "Phase1Setup",
	Phase1Running: "Phase1Running",
	Phase1Done:    "Phase1Done",
	Infeasible:    "Infeasible",
	Phase2Setup:   "Phase2Setup",
	Phase2Running: "Phase2Running",
	Unbounded:     "Unbounded",
	Optimal:       "Optimal",
	Aborted:       "Aborted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == Infeasible || s == Unbounded || s == Optimal || s == Aborted
}

// Solver owns a tableau and drives it through both phases.
type Solver struct {
	cfg *config
	log logrus.FieldLogger

	t         *tableau.Tableau
	basis     []int
	objective []float64

	state      State
	iterations int
	err        error
}

// New returns a solver for a pre-assembled tableau. The solver takes
// ownership of t: it is mutated in place until Phase 1 ends.
func New(t *tableau.Tableau, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Solver{
		cfg:   cfg,
		log:   cfg.logger.WithField("component", "simplex"),
		t:     t,
		state: Phase2Setup,
	}
	if needsPhase1(t, cfg.epsilon) {
		s.state = Phase1Setup
	}
	return s
}

// NewFromModel assembles the tableau of lp and returns a solver for it.
func NewFromModel(lp *model.Model, opts ...Option) (*Solver, error) {
	t, err := tableau.Assemble(lp)
	if err != nil {
		return nil, errors.Wrap(err, "simplex: assemble tableau")
	}
	return New(t, opts...), nil
}

func (s *Solver) State() State { return s.state }

// Iterations is the number of pivots of the loop so far, over both phases.
func (s *Solver) Iterations() int { return s.iterations }

// Tableau returns a copy of the tableau in its current state.
func (s *Solver) Tableau() *tableau.Tableau { return s.t.Clone() }

// Solve runs the solver to a terminal state. On Optimal it returns the final
// tableau; on Unbounded or Infeasible it returns an *UnboundedError or
// *InfeasibleError holding the certificate. Calling Solve again after a
// terminal state returns the same outcome.
func (s *Solver) Solve() (*tableau.Tableau, error) {
	for {
		switch s.state {
		case Phase1Setup:
			if err := s.setupPhase1(); err != nil {
				return s.abort(err)
			}
			s.transition(Phase1Running)
		case Phase1Running:
			if err := s.run(1); err != nil {
				return s.abort(err)
			}
			s.transition(Phase1Done)
		case Phase1Done:
			if err := s.finishPhase1(); err != nil {
				var infeasible *InfeasibleError
				if errors.As(err, &infeasible) {
					s.err = err
					s.transition(Infeasible)
					continue
				}
				return s.abort(err)
			}
			s.transition(Phase2Setup)
		case Phase2Setup:
			s.setupPhase2()
			s.transition(Phase2Running)
		case Phase2Running:
			if err := s.run(2); err != nil {
				var unbounded *UnboundedError
				if errors.As(err, &unbounded) {
					s.err = err
					s.transition(Unbounded)
					continue
				}
				return s.abort(err)
			}
			s.log.Debugf("final tableau\n%v", s.t)
			s.transition(Optimal)
		case Optimal:
			return s.t, nil
		default:
			return nil, s.err
		}
	}
}

// run is the pivot loop shared by both phases.
func (s *Solver) run(phase int) error {
	eps := s.cfg.epsilon
	for {
		column, ok := EnteringColumn(s.t, eps)
		if !ok {
			return nil
		}
		if IsUnbounded(s.t, column, eps) {
			return &UnboundedError{
				Column:      column,
				Certificate: unboundedCertificate(s.t, column),
			}
		}
		if s.cfg.maxIterations > 0 && s.iterations >= s.cfg.maxIterations {
			return errors.Wrapf(ErrIterationLimit, "after %d pivots", s.iterations)
		}
		row, ok := LeavingRow(s.t, column, eps)
		if !ok {
			return errors.Errorf("simplex: no leaving row for column %d", column)
		}

		s.log.WithFields(logrus.Fields{
			"phase":     phase,
			"iteration": s.iterations,
			"entering":  column,
			"leaving":   s.basis[row-1],
			"row":       row,
		}).Debug("base change")

		if err := s.t.Pivot(column, row); err != nil {
			return err
		}
		s.basis[row-1] = column
		s.iterations++
	}
}

func (s *Solver) transition(next State) {
	s.log.WithFields(logrus.Fields{
		"from": s.state,
		"to":   next,
	}).Debug("state change")
	s.state = next
}

func (s *Solver) abort(err error) (*tableau.Tableau, error) {
	s.err = err
	s.transition(Aborted)
	return nil, err
}

// OptimalValue is the objective value at the optimum.
func (s *Solver) OptimalValue() (float64, error) {
	if s.state != Optimal {
		return 0, errors.Wrapf(ErrNotOptimal, "solver is %v", s.state)
	}
	return s.t.Value(), nil
}

// Solution is the primal optimum, one value per decision variable.
func (s *Solver) Solution() ([]float64, error) {
	if s.state != Optimal {
		return nil, errors.Wrapf(ErrNotOptimal, "solver is %v", s.state)
	}
	t := s.t
	if t.HasBookkeeping() {
		stripped, err := t.StripBookkeeping()
		if err != nil {
			return nil, err
		}
		t = stripped
	}
	return t.ExtractSolution(), nil
}

// Certificate returns the dual values at Optimal, or the certificate carried
// by the error at Unbounded and Infeasible.
func (s *Solver) Certificate() ([]float64, error) {
	switch s.state {
	case Optimal:
		return s.t.SlackSegment(), nil
	case Unbounded:
		var unbounded *UnboundedError
		if errors.As(s.err, &unbounded) {
			return unbounded.Certificate, nil
		}
	case Infeasible:
		var infeasible *InfeasibleError
		if errors.As(s.err, &infeasible) {
			return infeasible.Certificate, nil
		}
	}
	return nil, errors.Errorf("simplex: no certificate in state %v", s.state)
}
