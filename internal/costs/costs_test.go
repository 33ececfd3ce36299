package costs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRFZeroRate(t *testing.T) {
	assert.InDelta(t, 1.0/25.0, CRF(0, 25), 1e-9)
}

func TestCRFSanity(t *testing.T) {
	// scenario 3 from the testable-properties list
	assert.InDelta(t, 0.07823, CRF(0.06, 25), 1e-4)
}

func TestCRFIdentity(t *testing.T) {
	for _, r := range []float64{0.01, 0.05, 0.1, 0.2} {
		for _, n := range []int{1, 5, 10, 30} {
			crf := CRF(r, n)
			growth := math.Pow(1+r, float64(n))
			got := crf * (growth - 1) / r
			assert.InDelta(t, growth, got, 1e-9)
		}
	}
}

func TestGasVariableCostAllGasScenario(t *testing.T) {
	// scenario 2: high cost scenario, heat_rate=9500, gas_price=5.00
	lcoe := GasVariableCost(9500, 5.00)
	assert.InDelta(t, 47.5, lcoe, 1e-6)
}

func TestEmissionsFactorZeroLoad(t *testing.T) {
	assert.Equal(t, 0.0, EmissionsFactor(8500, 100, 0))
}
