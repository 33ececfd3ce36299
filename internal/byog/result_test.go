package byog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunModelDefaultsProducesSensibleResult(t *testing.T) {
	result, err := RunModel(DefaultModel)
	require.NoError(t, err)

	assert.Len(t, result.CashFlowWaterfall, DefaultModel.Analysis.AnalysisPeriodYears)
	assert.Greater(t, result.SummaryKPIs.TotalProjectCostUSD, 0.0)
	assert.Greater(t, result.CalculationBreakdown.ResourceMix.TotalFirmAccreditedMW, 0.0)
	assert.InDelta(t, result.SummaryKPIs.TargetIRRPct, result.SummaryKPIs.HurdleIRRPct+
		DefaultModel.Revenue.TargetIRRBufferPct, 0.5)
	assert.GreaterOrEqual(t, result.SummaryKPIs.AppliedLeaseRateUSDPerMWMonth,
		result.SummaryKPIs.BaseLeaseRateUSDPerMWMonth)
}

func TestRunEndToEndWithRequestOverrides(t *testing.T) {
	req := Request{
		Site: SiteContext{FacilityPeakLoadKW: 90_000.0},
		BYOCInputs: map[string]any{
			"revenue": map[string]any{"dynamic_lease_pricing_enabled": false},
		},
	}
	result, err := Run(req)
	require.NoError(t, err)
	assert.False(t, result.SummaryKPIs.LeaseRateCalibrationApplied)
	assert.Equal(t, result.SummaryKPIs.BaseLeaseRateUSDPerMWMonth,
		result.SummaryKPIs.AppliedLeaseRateUSDPerMWMonth)
}

func TestRunPropagatesValidationErrors(t *testing.T) {
	req := Request{
		BYOCInputs: map[string]any{
			"resource_costs": map[string]any{
				"natural_gas": map[string]any{"fuel_cost_usd_per_mmbtu": 0.0},
			},
		},
	}
	_, err := Run(req)
	assert.Error(t, err)
}
