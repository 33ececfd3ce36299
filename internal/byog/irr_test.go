package byog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIRRBisectionKnownSeries(t *testing.T) {
	// -100 now, +110 in one year: exactly a 10% return.
	irr, ok := IRRBisection([]float64{-100, 110})
	assert.True(t, ok)
	assert.InDelta(t, 0.10, irr, 1e-4)
}

func TestIRRBisectionNoSignChange(t *testing.T) {
	irr, ok := IRRBisection([]float64{100, 110, 120})
	assert.False(t, ok)
	assert.Equal(t, 0.0, irr)
}

func TestNPVZeroRateIsSum(t *testing.T) {
	cashflows := []float64{-100, 40, 40, 40}
	assert.InDelta(t, 20.0, NPV(0, cashflows), 1e-9)
}

func TestSignHelper(t *testing.T) {
	assert.Equal(t, 1.0, sign(5))
	assert.Equal(t, -1.0, sign(-5))
	assert.Equal(t, 0.0, sign(0))
}
