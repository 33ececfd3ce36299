package byog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePct(t *testing.T) {
	assert.InDelta(t, 0.25, normalizePct(25.0), 1e-9)
	assert.InDelta(t, 0.25, normalizePct(0.25), 1e-9)
	assert.InDelta(t, 0.01, normalizePct(1.0), 1e-9)
}

func TestDeepMergeRecursesNestedObjects(t *testing.T) {
	base := map[string]any{
		"a": map[string]any{"x": 1.0, "y": 2.0},
		"b": 3.0,
	}
	override := map[string]any{
		"a": map[string]any{"x": 9.0},
	}
	merged := deepMerge(base, override)
	nested := merged["a"].(map[string]any)
	assert.Equal(t, 9.0, nested["x"])
	assert.Equal(t, 2.0, nested["y"])
	assert.Equal(t, 3.0, merged["b"])
}

func TestDeepMergeArrayReplacesWholeArray(t *testing.T) {
	base := map[string]any{"tiers": []any{1.0, 2.0, 3.0}}
	override := map[string]any{"tiers": []any{9.0}}
	merged := deepMerge(base, override)
	assert.Equal(t, []any{9.0}, merged["tiers"])
}

func TestBuildModelAppliesOverridesAndBridge(t *testing.T) {
	req := Request{
		Site: SiteContext{FacilityPeakLoadKW: 50_000.0},
		BYOCInputs: map[string]any{
			"data_center": map[string]any{"total_it_capacity_mw": 80.0},
			"revenue":     map[string]any{"leasable_it_capacity_mw": 80.0},
			"curtailment": map[string]any{
				"tiers": []any{
					map[string]any{"name": "tier4", "mw": 10.0, "max_event_hours": 8.0, "max_events": 50.0, "revenue_loss_per_mwh": 50.0},
					map[string]any{"name": "tier3", "mw": 10.0, "max_event_hours": 4.0, "max_events": 30.0, "revenue_loss_per_mwh": 120.0},
					map[string]any{"name": "tier2", "mw": 5.0, "max_event_hours": 2.0, "max_events": 15.0, "revenue_loss_per_mwh": 250.0},
					map[string]any{"name": "tier1", "mw": 0.0, "max_event_hours": 0.0, "max_events": 0.0, "revenue_loss_per_mwh": 0.0},
				},
			},
		},
	}
	model, err := BuildModel(req)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, model.LoadProfile.PeakITLoadMW, 1e-9)

	var tierSum float64
	for _, tier := range model.Curtailment.Tiers {
		tierSum += tier.MW
	}
	assert.InDelta(t, model.LoadProfile.PeakITLoadMW, tierSum, 1e-6)
}

func TestBuildModelRejectsInvalidLoadProfile(t *testing.T) {
	req := Request{
		BYOCInputs: map[string]any{
			"load_profile": map[string]any{"min_operating_load_mw": 500.0},
		},
	}
	_, err := BuildModel(req)
	assert.Error(t, err)
}
