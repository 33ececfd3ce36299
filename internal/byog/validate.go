package byog

import (
	"math"

	"hybridretrofit/internal/apperr"
)

const guardrailEpsilon = 1e-9

// validateGuardrails checks the cross-field invariants a resolved Model must
// satisfy before the engine can run against it.
func validateGuardrails(m Model) error {
	totalIT := m.DataCenter.TotalITCapacityMW
	peak := m.LoadProfile.PeakITLoadMW
	minLoad := m.LoadProfile.MinOperatingLoadMW
	leasable := m.Revenue.LeasableITCapacityMW

	if peak > totalIT+guardrailEpsilon {
		return apperr.Validation("peak_it_load_mw must be <= total_it_capacity_mw")
	}
	if minLoad > peak+guardrailEpsilon {
		return apperr.Validation("min_operating_load_mw must be <= peak_it_load_mw")
	}
	if leasable > totalIT+guardrailEpsilon {
		return apperr.Validation("leasable_it_capacity_mw must be <= total_it_capacity_mw")
	}

	var tierSum float64
	for _, t := range m.Curtailment.Tiers {
		tierSum += t.MW
	}
	if math.Abs(tierSum-peak) > 1e-3 {
		return apperr.Validation("curtailment tier MW values must sum to peak_it_load_mw")
	}

	if m.ResourceCosts.NaturalGas.FuelCostUSDPerMMBtu <= 0 {
		return apperr.Validation("natural gas fuel_cost_usd_per_mmbtu must be > 0")
	}

	return nil
}
