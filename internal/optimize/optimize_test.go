package optimize

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridretrofit/internal/apperr"
)

func init() {
	os.Setenv("OPTIMIZE_CACHE_DISABLE", "true")
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := Run(Request{PlantID: "p1", TargetLoadMW: 100, CostScenario: "nope"})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}

func TestRunNonPositiveLoad(t *testing.T) {
	_, err := Run(Request{PlantID: "p1", TargetLoadMW: 0, CostScenario: "base"})
	assert.Error(t, err)
}

func TestRunBadSolarProfileLength(t *testing.T) {
	_, err := Run(Request{
		PlantID:      "p1",
		TargetLoadMW: 100,
		CostScenario: "base",
		SolarProfile: make([]float64, 10),
	})
	assert.Error(t, err)
}

// TestRunHighScenarioFullGasCap matches the 100%-gas-cap acceptance scenario
// from the sizing model: net LCOE should land near the pure gas-variable
// cost (9500 BTU/kWh at the high scenario's $5.00/MMBtu = 47.5 $/MWh) when
// renewables are uneconomical and gas is unrestricted.
func TestRunHighScenarioFullGasCap(t *testing.T) {
	full := 1.0
	heatRate := 9500.0
	resp, err := Run(Request{
		PlantID:              "p1",
		TargetLoadMW:         100,
		MaxGasBackupPct:      full,
		CostScenario:         "high",
		GasHeatRateBTUPerKWh: &heatRate,
	})
	require.NoError(t, err)
	require.Len(t, resp.HourlyDispatch, 288)
	assert.InDelta(t, 47.5, resp.NetLCOE, 1.0)
	assert.Less(t, resp.SolarCapacityMW, 1.0)
}

func TestRunZeroGasCapHasNoGasDispatch(t *testing.T) {
	zero := 0.0
	resp, err := Run(Request{
		PlantID:         "p1",
		TargetLoadMW:    100,
		MaxGasBackupPct: zero,
		CostScenario:    "base",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, resp.GasBackupActual, 1e-6)
	for _, row := range resp.HourlyDispatch {
		assert.InDelta(t, 0, row.GasMW, 1e-3)
	}
}
