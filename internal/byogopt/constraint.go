package byogopt

import (
	"math"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/byog"
)

// Constraint is a feasibility check against a summary KPI, evaluated after
// each grid-search candidate runs.
type Constraint struct {
	Metric   string  `json:"metric"`
	Operator string  `json:"operator"`
	Value    float64 `json:"value"`
}

const constraintEqualTolerance = 1e-6

func (c Constraint) passes(result byog.Result) (bool, error) {
	value, ok := kpi(result, c.Metric)
	if !ok {
		return false, nil
	}
	switch c.Operator {
	case "less_than":
		return value < c.Value, nil
	case "less_than_equal":
		return value <= c.Value, nil
	case "greater_than":
		return value > c.Value, nil
	case "greater_than_equal":
		return value >= c.Value, nil
	case "equal":
		return math.Abs(value-c.Value) <= constraintEqualTolerance, nil
	default:
		return false, apperr.Validation("unsupported constraint operator %q", c.Operator)
	}
}

func allPass(result byog.Result, constraints []Constraint) (bool, error) {
	for _, c := range constraints {
		ok, err := c.passes(result)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
