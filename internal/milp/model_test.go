package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridretrofit/internal/solarprofile"
)

func baseParams(load, maxGasBackupPct float64) BuildParams {
	return BuildParams{
		LoadMW:                        load,
		Profile:                       solarprofile.Generate(35),
		GasCapacityMW:                 load,
		MaxGasBackupPct:               maxGasBackupPct,
		InverterEfficiency:            0.97,
		BatteryRTE:                    0.88,
		SolarAnnualCostPerMW:          86000,
		BatteryEnergyAnnualCostPerMWh: 14000,
		BatteryPowerAnnualCostPerMW:   60000,
		GasVariableCostPerMWh:         47.5,
	}
}

// TestRunFullGasCap matches the 100%-gas-cap acceptance scenario: with solar
// economically unattractive relative to always-available gas, the optimizer
// should size no solar or battery and meet load entirely from gas.
func TestRunFullGasCap(t *testing.T) {
	p := baseParams(100, 1.0)
	p.SolarAnnualCostPerMW = 5_000_000 // deliberately uneconomical
	p.BatteryEnergyAnnualCostPerMWh = 1_000_000
	p.BatteryPowerAnnualCostPerMW = 1_000_000

	result := Run(p)
	require.NotEmpty(t, result.Dispatch)
	assert.InDelta(t, 0, result.SolarCapacityMW, 1e-3)
	assert.InDelta(t, 0, result.BatteryPowerMW, 1e-3)
	for _, row := range result.Dispatch {
		assert.InDelta(t, 100, row.GasMW, 1e-3)
		balance := row.SolarMW + row.BatteryMW + row.GasMW
		assert.GreaterOrEqual(t, balance, row.LoadMW-1e-4)
	}
}

// TestRunZeroGasCap matches the zero-gas-cap acceptance scenario: with no
// gas allowed at all, every dispatch hour must be covered by solar/battery
// alone and the energy balance must still hold within tolerance.
func TestRunZeroGasCap(t *testing.T) {
	p := baseParams(100, 0.0)

	result := Run(p)
	require.NotEmpty(t, result.Dispatch)
	assert.GreaterOrEqual(t, result.SolarCapacityMW, 100.0)
	assert.Greater(t, result.BatteryEnergyMWh, 0.0)
	for _, row := range result.Dispatch {
		assert.InDelta(t, 0, row.GasMW, 1e-3)
		balance := row.SolarMW + row.BatteryMW + row.GasMW
		assert.GreaterOrEqual(t, balance, row.LoadMW-1e-4)
	}
}

func TestRunRespectsConflictHours(t *testing.T) {
	p := baseParams(100, 1.0)
	p.ConflictHours = map[int]bool{10: true, 50: true}

	result := Run(p)
	assert.InDelta(t, 0, result.Dispatch[10].GasMW, 1e-6)
	assert.InDelta(t, 0, result.Dispatch[50].GasMW, 1e-6)
}
