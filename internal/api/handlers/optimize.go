package handlers

import (
	"log"
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/optimize"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler serves the MILP sizing/dispatch endpoint.
type OptimizeHandler struct{}

// NewOptimizeHandler creates a new optimize handler.
func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

// Run handles POST /api/v1/optimize.
func (h *OptimizeHandler) Run(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}
	req.DefaultsApplied()

	log.Printf("[optimize] plant=%s load=%.1fMW scenario=%s", req.PlantID, req.TargetLoadMW, req.CostScenario)

	resp, err := optimize.Run(req.ToOptimizeRequest())
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[optimize] solved: solar=%.1fMW battery=%.1fMW/%.1fMWh lcoe=%.2f status=%s",
		resp.SolarCapacityMW, resp.BatteryPowerMW, resp.BatteryEnergyMWh, resp.NetLCOE, resp.SolverStatus)

	c.JSON(http.StatusOK, resp)
}
