package simplex

import (
	"q.log/tableau-simplex/model"
)

// Result is the outcome of an optimal solve.
type Result struct {
	Status State

	// Value is the optimal objective value c'x.
	Value float64

	// Solution holds one value per decision variable.
	Solution []float64

	// Certificate holds the dual value of every restriction.
	Certificate []float64

	Iterations int
}

// Solve assembles lp, solves it and collects the optimum. Unbounded and
// infeasible programs come back as *UnboundedError and *InfeasibleError.
func Solve(lp *model.Model, opts ...Option) (*Result, error) {
	s, err := NewFromModel(lp, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := s.Solve(); err != nil {
		return nil, err
	}

	value, err := s.OptimalValue()
	if err != nil {
		return nil, err
	}
	x, err := s.Solution()
	if err != nil {
		return nil, err
	}
	cert, err := s.Certificate()
	if err != nil {
		return nil, err
	}

	return &Result{
		Status:      s.State(),
		Value:       value,
		Solution:    x,
		Certificate: cert,
		Iterations:  s.Iterations(),
	}, nil
}
