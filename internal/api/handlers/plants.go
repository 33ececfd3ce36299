package handlers

import (
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/data"

	"github.com/gin-gonic/gin"
)

// PlantsHandler serves the plant registry lookup that resolves a plant_id
// to its physical parameters. The optimize endpoint does not consult it.
type PlantsHandler struct {
	registry *data.Registry
}

// NewPlantsHandler creates a new plants handler backed by registry.
func NewPlantsHandler(registry *data.Registry) *PlantsHandler {
	return &PlantsHandler{registry: registry}
}

// Get handles GET /api/v1/plants/:id.
func (h *PlantsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	plant, ok := h.registry.Lookup(id)
	if !ok {
		respondError(c, apperr.Validation("unknown plant_id %q", id))
		return
	}

	c.JSON(http.StatusOK, models.PlantInfo{
		ID:                plant.ID,
		Name:              plant.Name,
		Latitude:          plant.Latitude,
		HeatRateBTUPerKWh: plant.HeatRateBTUPerKWh,
		CapacityFactor:    plant.CapacityFactor,
		CapacityMW:        plant.CapacityMW,
		CommissioningYear: plant.CommissioningYear,
	})
}
