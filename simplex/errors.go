package simplex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnbounded      = errors.New("simplex: problem is unbounded")
	ErrInfeasible     = errors.New("simplex: problem is infeasible")
	ErrIterationLimit = errors.New("simplex: iteration limit reached")
	ErrNotOptimal     = errors.New("simplex: no optimal solution")
)

// UnboundedError is returned when the objective grows without bound along a
// column. Certificate has one entry per decision variable.
type UnboundedError struct {
	Column      int
	Certificate []float64
}

func (e *UnboundedError) Error() string {
	return fmt.Sprintf("%v (column %d, certificate %v)", ErrUnbounded, e.Column, e.Certificate)
}

func (e *UnboundedError) Is(target error) bool { return target == ErrUnbounded }

// InfeasibleError is returned when Phase 1 ends with a positive infeasibility.
// Certificate has one entry per restriction.
type InfeasibleError struct {
	Infeasibility float64
	Certificate   []float64
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v (infeasibility %g, certificate %v)", ErrInfeasible, e.Infeasibility, e.Certificate)
}

func (e *InfeasibleError) Is(target error) bool { return target == ErrInfeasible }
