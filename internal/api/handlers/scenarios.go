package handlers

import (
	"net/http"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/scenarios"

	"github.com/gin-gonic/gin"
)

// ListCostScenarios handles GET /api/v1/cost-scenarios.
func ListCostScenarios(c *gin.Context) {
	out := make(map[string]models.CostScenarioInfo, len(scenarios.Names()))
	for _, name := range scenarios.Names() {
		s := scenarios.MustLookup(name)
		out[name] = models.CostScenarioInfo{
			Description:              s.Description,
			SolarCapexPerKW:          s.SolarCapexPerKW,
			BatteryEnergyCapexPerKWh: s.BatteryEnergyCapexPerKWh,
			BatteryPowerCapexPerKW:   s.BatteryPowerCapexPerKW,
			SolarOMPerKWYear:         s.SolarOMPerKWYear,
			BatteryOMPerKWYear:       s.BatteryOMPerKWYear,
			InverterEfficiency:      s.InverterEfficiency,
			BatteryRTE:               s.BatteryRTE,
			WACC:                     s.WACC,
			GasPricePerMMBtu:         s.GasPricePerMMBtu,
		}
	}
	c.JSON(http.StatusOK, out)
}
