package byogopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridretrofit/internal/byog"
)

func baseRequest() byog.Request {
	return byog.Request{
		Site: byog.SiteContext{FacilityPeakLoadKW: 90_000.0},
	}
}

func TestSingleVariableGoalSeekConverges(t *testing.T) {
	base := baseRequest()
	baseline, err := byog.Run(base)
	require.NoError(t, err)

	job := GoalSeekJob{
		TargetVariable: "npv_usd",
		TargetValue:    baseline.SummaryKPIs.NPVUSD,
		DecisionVariable: DecisionVariable{
			Path:      "financial_assumptions.discount_rate_pct",
			Min:       5.0,
			Max:       15.0,
			Tolerance: 1000.0,
		},
	}
	result, err := SingleVariableGoalSeek(base, job)
	require.NoError(t, err)
	assert.Equal(t, "single_variable_goal_seek", result.Mode)
	assert.GreaterOrEqual(t, result.SolvedValue, job.DecisionVariable.Min)
	assert.LessOrEqual(t, result.SolvedValue, job.DecisionVariable.Max)
}

func TestSingleVariableGoalSeekUnknownKPIErrors(t *testing.T) {
	job := GoalSeekJob{
		TargetVariable: "not_a_real_metric",
		TargetValue:    1.0,
		DecisionVariable: DecisionVariable{
			Path: "financial_assumptions.discount_rate_pct",
			Min:  5.0,
			Max:  15.0,
		},
	}
	_, err := SingleVariableGoalSeek(baseRequest(), job)
	assert.Error(t, err)
}

func TestMultiVariableOptimizeFindsFeasibleBest(t *testing.T) {
	job := GridSearchJob{
		TargetVariable: "npv_usd",
		Goal:           "maximize",
		DecisionVariables: map[string]GridVariable{
			"discount_rate_pct": {Min: 8.0, Max: 12.0, Step: 2.0},
		},
	}
	result, err := MultiVariableOptimize(baseRequest(), job)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TestedScenarios)
	assert.Equal(t, result.TestedScenarios, result.FeasibleScenarios)
}

func TestMultiVariableOptimizeAppliesConstraints(t *testing.T) {
	job := GridSearchJob{
		TargetVariable: "npv_usd",
		Goal:           "maximize",
		Constraints: []Constraint{
			{Metric: "npv_usd", Operator: "greater_than", Value: 1e18},
		},
		DecisionVariables: map[string]GridVariable{
			"discount_rate_pct": {Min: 8.0, Max: 12.0, Step: 2.0},
		},
	}
	_, err := MultiVariableOptimize(baseRequest(), job)
	assert.Error(t, err)
}

func TestMultiVariableOptimizeRejectsEmptyDecisionVariables(t *testing.T) {
	_, err := MultiVariableOptimize(baseRequest(), GridSearchJob{TargetVariable: "npv_usd"})
	assert.Error(t, err)
}

func TestDynamicSensitivityHeatmapGridShape(t *testing.T) {
	job := HeatmapJob{
		XAxis:   HeatmapAxis{Path: "financial_assumptions.discount_rate_pct", Min: 8.0, Max: 10.0, Step: 1.0},
		YAxis:   HeatmapAxis{Path: "financial_assumptions.inflation_rate_pct", Min: 2.0, Max: 3.0, Step: 1.0},
		ZMetric: "npv_usd",
	}
	result, err := DynamicSensitivityHeatmap(baseRequest(), job)
	require.NoError(t, err)
	assert.Len(t, result.Points, 3*2)
	for _, p := range result.Points {
		require.NotNil(t, p.Z)
	}
}
