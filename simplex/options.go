package simplex

import (
	"io"

	"github.com/sirupsen/logrus"

	"q.log/tableau-simplex/tableau"
)

// Option configures a Solver.
type Option func(*config)

type config struct {
	epsilon       float64
	maxIterations int
	logger        logrus.FieldLogger
}

func defaultConfig() *config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &config{
		epsilon: tableau.Epsilon,
		logger:  l,
	}
}

// WithEpsilon sets the tolerance of the optimality, unboundedness, ratio and
// feasibility tests. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithMaxIterations caps the number of pivots over both phases. Zero, the
// default, means no cap.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxIterations = n
		}
	}
}

// WithLogger sets the logger that receives pivot and phase events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
