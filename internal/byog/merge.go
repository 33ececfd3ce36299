package byog

import (
	"encoding/json"
	"math"

	"hybridretrofit/internal/apperr"
)

// normalizePct converts a percent-or-fraction value to a fraction: inputs
// >= 1.0 are assumed to be whole percentages ("25" meaning 25%) and are
// divided by 100; inputs already below 1.0 pass through unchanged.
func normalizePct(v float64) float64 {
	if v >= 1.0 {
		return v / 100.0
	}
	return v
}

// deepMerge overlays override onto base: nested objects recurse, anything
// else (scalars, arrays) replaces outright.
func deepMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		if overrideMap, ok := v.(map[string]any); ok {
			if baseMap, ok := merged[k].(map[string]any); ok {
				merged[k] = deepMerge(baseMap, overrideMap)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

// BuildModel deep-merges req.BYOCInputs over DefaultModel, applies the
// compatibility bridge from SiteContext/AssetParameters/FinancialAssumptions,
// reconciles the tier1 curtailment bucket against peak load, and validates
// the result.
func BuildModel(req Request) (Model, error) {
	baseBytes, err := json.Marshal(DefaultModel)
	if err != nil {
		return Model{}, apperr.Internal(err)
	}
	var baseMap map[string]any
	if err := json.Unmarshal(baseBytes, &baseMap); err != nil {
		return Model{}, apperr.Internal(err)
	}

	merged := baseMap
	if len(req.BYOCInputs) > 0 {
		merged = deepMerge(baseMap, req.BYOCInputs)
	}

	mergedBytes, err := json.Marshal(merged)
	if err != nil {
		return Model{}, apperr.Internal(err)
	}
	var model Model
	if err := json.Unmarshal(mergedBytes, &model); err != nil {
		return Model{}, apperr.Internal(err)
	}

	applyCompatibilityBridge(&model, req)
	reconcileTier1(&model)

	if err := validateGuardrails(model); err != nil {
		return Model{}, err
	}
	return model, nil
}

// applyCompatibilityBridge seeds nested Model fields from the flatter
// Site/Asset/Fin payload sections, mirroring the legacy request shape.
func applyCompatibilityBridge(m *Model, req Request) {
	if req.Site.FacilityPeakLoadKW > 0 {
		peakMW := req.Site.FacilityPeakLoadKW / 1000.0
		m.LoadProfile.PeakITLoadMW = peakMW
		if m.DataCenter.TotalITCapacityMW < peakMW {
			m.DataCenter.TotalITCapacityMW = peakMW
		}
	}

	if req.Asset.NameplateCapacityKW > 0 {
		genMW := req.Asset.NameplateCapacityKW / 1000.0
		if m.ResourceCosts.NaturalGas.SeedNameplateMW == 0 {
			m.ResourceCosts.NaturalGas.SeedNameplateMW = genMW
		}
	}
	if req.Asset.FuelPriceUSDPerMMBtu > 0 {
		m.ResourceCosts.NaturalGas.FuelCostUSDPerMMBtu = req.Asset.FuelPriceUSDPerMMBtu
	}
	if req.Asset.FuelEscalatorPct > 0 {
		m.ResourceCosts.NaturalGas.FuelPriceEscalationPct = req.Asset.FuelEscalatorPct
	}
	if req.Asset.HeatRateBTUPerKWh > 0 {
		m.ResourceCosts.NaturalGas.HeatRateMMBtuPerMWh = req.Asset.HeatRateBTUPerKWh / 1000.0
	}

	if req.Fin != nil {
		if req.Fin.DiscountRatePct > 0 {
			m.Analysis.DiscountRatePct = req.Fin.DiscountRatePct
		}
		if req.Fin.InflationRatePct > 0 {
			m.Analysis.GeneralInflationRatePct = req.Fin.InflationRatePct
		}
	}
}

// reconcileTier1 adjusts the tier1 ("unrestricted") curtailment bucket so
// the tiers sum to peak load whenever a caller resizes the other tiers
// without also resizing tier1.
func reconcileTier1(m *Model) {
	peak := m.LoadProfile.PeakITLoadMW
	if peak <= 0 {
		return
	}
	var tierTotal float64
	for _, t := range m.Curtailment.Tiers {
		tierTotal += t.MW
	}
	if math.Abs(tierTotal-peak) <= 1e-3 {
		return
	}
	for i := range m.Curtailment.Tiers {
		if m.Curtailment.Tiers[i].Name != "tier1" {
			continue
		}
		var otherTotal float64
		for j, t := range m.Curtailment.Tiers {
			if j != i {
				otherTotal += t.MW
			}
		}
		m.Curtailment.Tiers[i].MW = math.Max(peak-otherTotal, 0.0)
		return
	}
}
