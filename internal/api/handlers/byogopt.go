package handlers

import (
	"encoding/json"
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/byogopt"

	"github.com/gin-gonic/gin"
)

// OptimizeBYOGHandler serves the goal-seek / grid-search / sensitivity-
// heatmap optimizer shell layered on top of the BYOG engine.
type OptimizeBYOGHandler struct{}

// NewOptimizeBYOGHandler creates a new optimize/byog handler.
func NewOptimizeBYOGHandler() *OptimizeBYOGHandler {
	return &OptimizeBYOGHandler{}
}

// Run handles POST /api/v1/optimize/byog.
func (h *OptimizeBYOGHandler) Run(c *gin.Context) {
	var req models.BYOGOptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	base := req.ToByogRequest()
	mode, _ := req.OptimizationJob["mode"].(string)

	var (
		body any
		err  error
	)
	switch mode {
	case "single_variable_goal_seek":
		var job byogopt.GoalSeekJob
		if err = decodeJob(req.OptimizationJob, &job); err == nil {
			var result byogopt.GoalSeekResult
			result, err = byogopt.SingleVariableGoalSeek(base, job)
			if err == nil {
				body = gin.H{
					"optimization_job": gin.H{
						"mode":              result.Mode,
						"target_variable":   result.TargetVariable,
						"target_value":      result.TargetValue,
						"decision_variable": result.DecisionVariable,
						"solved_value":      result.SolvedValue,
					},
					"simulation_results": result.Simulation,
				}
			}
		}
	case "multi_variable":
		var job byogopt.GridSearchJob
		if err = decodeJob(req.OptimizationJob, &job); err == nil {
			var result byogopt.GridSearchResult
			result, err = byogopt.MultiVariableOptimize(base, job)
			if err == nil {
				body = gin.H{
					"optimization_job": gin.H{
						"mode":               result.Mode,
						"target_variable":    result.TargetVariable,
						"goal":               result.Goal,
						"tested_scenarios":   result.TestedScenarios,
						"feasible_scenarios": result.FeasibleScenarios,
						"objective_value":    result.ObjectiveValue,
					},
					"best_configuration": result.BestConfiguration,
					"simulation_results":  result.Simulation,
				}
			}
		}
	case "sensitivity_heatmap":
		var job byogopt.HeatmapJob
		if err = decodeJob(req.OptimizationJob, &job); err == nil {
			var result byogopt.HeatmapResult
			result, err = byogopt.DynamicSensitivityHeatmap(base, job)
			if err == nil {
				body = gin.H{
					"optimization_job": gin.H{
						"mode":     result.Mode,
						"x_axis":   result.XAxis,
						"y_axis":   result.YAxis,
						"z_metric": result.ZMetric,
					},
					"points": result.Points,
				}
			}
		}
	default:
		err = apperr.Validation(
			"optimization_job.mode must be one of: single_variable_goal_seek, multi_variable, sensitivity_heatmap")
	}

	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func decodeJob(raw map[string]any, out any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return apperr.Validation("malformed optimization_job: %v", err)
	}
	return nil
}
