package byogopt

import (
	"math"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/byog"
)

// GridVariable bounds one axis of a multi-variable grid search.
type GridVariable struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// GridSearchJob is an OPT-02 request: sweep the Cartesian product of
// decision_variables, keep candidates that pass every constraint, and
// report the best (by goal) feasible one.
type GridSearchJob struct {
	TargetVariable    string                  `json:"target_variable"`
	Goal              string                  `json:"goal,omitempty"`
	Constraints       []Constraint            `json:"constraints,omitempty"`
	DecisionVariables map[string]GridVariable `json:"decision_variables"`
}

// GridSearchResult is the best feasible candidate found, plus sweep
// telemetry (how many were tested and how many passed every constraint).
type GridSearchResult struct {
	Mode               string      `json:"mode"`
	TargetVariable      string      `json:"target_variable"`
	Goal                string      `json:"goal"`
	TestedScenarios     int         `json:"tested_scenarios"`
	FeasibleScenarios   int         `json:"feasible_scenarios"`
	ObjectiveValue      float64     `json:"objective_value"`
	BestConfiguration   map[string]any `json:"best_configuration"`
	Simulation          byog.Result `json:"simulation_results"`
}

func buildGridValues(v GridVariable) []float64 {
	var values []float64
	for cur := v.Min; cur <= v.Max+1e-9; cur += v.Step {
		values = append(values, roundTo(cur, 6))
	}
	return values
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// MultiVariableOptimize performs the OPT-02 grid search described above.
func MultiVariableOptimize(base byog.Request, job GridSearchJob) (GridSearchResult, error) {
	varNames := make([]string, 0, len(job.DecisionVariables))
	for name := range job.DecisionVariables {
		varNames = append(varNames, name)
	}
	if len(varNames) == 0 {
		return GridSearchResult{}, apperr.Validation("no decision variables provided")
	}

	grids := make([][]float64, len(varNames))
	for i, name := range varNames {
		grids[i] = buildGridValues(job.DecisionVariables[name])
	}

	goal := job.Goal
	if goal == "" {
		goal = "maximize"
	}

	basePayload, err := toRawPayload(base)
	if err != nil {
		return GridSearchResult{}, err
	}

	var (
		tested, feasible int
		bestValue         float64
		bestPayload       rawPayload
		bestResult        byog.Result
		haveBest          bool
		visitErr          error
	)

	var visit func(idx int, payload rawPayload)
	visit = func(idx int, payload rawPayload) {
		if visitErr != nil {
			return
		}
		if idx == len(varNames) {
			tested++
			result, err := evaluate(payload)
			if err != nil {
				visitErr = err
				return
			}
			ok, err := allPass(result, job.Constraints)
			if err != nil {
				visitErr = err
				return
			}
			if !ok {
				return
			}
			feasible++
			value, found := kpi(result, job.TargetVariable)
			if !found {
				return
			}
			switch {
			case !haveBest:
				haveBest, bestValue, bestPayload, bestResult = true, value, payload.clone(), result
			case goal == "maximize" && value > bestValue:
				bestValue, bestPayload, bestResult = value, payload.clone(), result
			case goal == "minimize" && value < bestValue:
				bestValue, bestPayload, bestResult = value, payload.clone(), result
			}
			return
		}

		name := varNames[idx]
		for _, v := range grids[idx] {
			candidate := payload.clone()
			path := resolvePath(candidate, name)
			setNested(candidate, path, v)
			visit(idx+1, candidate)
			if visitErr != nil {
				return
			}
		}
	}

	visit(0, basePayload)
	if visitErr != nil {
		return GridSearchResult{}, visitErr
	}
	if !haveBest {
		return GridSearchResult{}, apperr.Validation("no feasible solution found for optimization job")
	}

	bestConfig := map[string]any{
		"asset_parameters":      bestPayload["asset_parameters"],
		"financial_assumptions": bestPayload["financial_assumptions"],
	}

	return GridSearchResult{
		Mode:              "multi_variable",
		TargetVariable:    job.TargetVariable,
		Goal:              goal,
		TestedScenarios:   tested,
		FeasibleScenarios: feasible,
		ObjectiveValue:    bestValue,
		BestConfiguration: bestConfig,
		Simulation:        bestResult,
	}, nil
}
