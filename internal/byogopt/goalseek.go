package byogopt

import (
	"math"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/byog"
)

const defaultGoalSeekMaxIterations = 50
const defaultGoalSeekTolerance = 0.01

// DecisionVariable bounds the single variable a goal seek searches over.
type DecisionVariable struct {
	Path          string  `json:"path"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
}

// GoalSeekJob is an OPT-01 request: find the decision-variable value that
// drives target_variable to target_value.
type GoalSeekJob struct {
	TargetVariable   string            `json:"target_variable"`
	TargetValue      float64           `json:"target_value"`
	DecisionVariable DecisionVariable  `json:"decision_variable"`
}

// GoalSeekResult is the closest candidate the bisection found, plus the
// payload and simulation that produced it.
type GoalSeekResult struct {
	Mode             string       `json:"mode"`
	TargetVariable   string       `json:"target_variable"`
	TargetValue      float64      `json:"target_value"`
	DecisionVariable string       `json:"decision_variable"`
	SolvedValue      float64      `json:"solved_value"`
	Simulation       byog.Result  `json:"simulation_results"`
}

// SingleVariableGoalSeek bisects decision_variable.path over [min, max],
// assuming a monotonic relationship with target_variable, until the
// candidate's KPI is within tolerance of target_value or max_iterations is
// exhausted. The closest candidate seen is returned even if tolerance was
// never reached.
func SingleVariableGoalSeek(base byog.Request, job GoalSeekJob) (GoalSeekResult, error) {
	dv := job.DecisionVariable
	lo, hi := dv.Min, dv.Max
	tol := dv.Tolerance
	if tol <= 0 {
		tol = defaultGoalSeekTolerance
	}
	maxIter := dv.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultGoalSeekMaxIterations
	}

	basePayload, err := toRawPayload(base)
	if err != nil {
		return GoalSeekResult{}, err
	}

	var bestErr = math.Inf(1)
	var bestValue float64
	var bestResult byog.Result
	found := false

	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		candidate := basePayload.clone()
		setNested(candidate, dv.Path, mid)

		result, err := evaluate(candidate)
		if err != nil {
			return GoalSeekResult{}, err
		}
		value, ok := kpi(result, job.TargetVariable)
		if !ok {
			return GoalSeekResult{}, apperr.Validation("KPI %q not found in simulation output", job.TargetVariable)
		}

		errAbs := math.Abs(value - job.TargetValue)
		if errAbs < bestErr {
			bestErr = errAbs
			bestValue = mid
			bestResult = result
			found = true
		}
		if errAbs <= tol {
			break
		}

		if value > job.TargetValue {
			lo = mid
		} else {
			hi = mid
		}
	}

	if !found {
		return GoalSeekResult{}, apperr.Validation("goal seek failed to find a candidate")
	}

	return GoalSeekResult{
		Mode:             "single_variable_goal_seek",
		TargetVariable:   job.TargetVariable,
		TargetValue:      job.TargetValue,
		DecisionVariable: dv.Path,
		SolvedValue:      bestValue,
		Simulation:       bestResult,
	}, nil
}
