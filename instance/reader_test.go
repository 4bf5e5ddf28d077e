package instance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundRows(t *testing.T) {
	coefs := []float64{1, 2}

	assert.Empty(t, boundRows(coefs, -math.MaxFloat64, math.MaxFloat64))

	le := boundRows(coefs, -math.MaxFloat64, 4)
	assert.Equal(t, []row{{coefs: coefs, rhs: 4}}, le)

	ge := boundRows(coefs, 1, math.MaxFloat64)
	assert.Equal(t, []row{{coefs: coefs, rhs: 1, geq: true}}, ge)

	eq := boundRows(coefs, 3, 3)
	assert.Equal(t, []row{
		{coefs: coefs, rhs: 3},
		{coefs: coefs, rhs: 3, geq: true},
	}, eq)
}
