package handlers

import (
	"log"
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/byog"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs the BYOG/BYOC financial engine for one scenario.
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler.
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// Run handles POST /api/v1/simulate.
func (h *SimulateHandler) Run(c *gin.Context) {
	var req models.BYOGScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	result, err := byog.Run(req.ToByogRequest())
	if err != nil {
		log.Printf("[simulate] failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"simulation_results": result})
}
