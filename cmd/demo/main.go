package main

import (
	"flag"
	"fmt"

	"hybridretrofit/internal/byog"
	"hybridretrofit/internal/data"
	"hybridretrofit/internal/optimize"
)

// Demo walks through one fixed scenario end to end: pick a seed plant,
// size the solar+battery retrofit for the target load from the plant's
// heat rate, capacity factor and latitude, then run the BYOG cash-flow
// engine for a data center co-located with the plant, printing the KPIs a
// front-end would show after both calls.
func main() {
	plantID := flag.String("plant", "ercot-ccgt-01", "Seed plant id (see internal/data.SeedPlants)")
	loadMW := flag.Float64("load", 80.0, "Target IT load, MW")
	scenario := flag.String("scenario", "base", "Cost scenario: base, low, high, high_gas")
	flag.Parse()

	registry := data.NewRegistry(data.SeedPlants())
	plant, ok := registry.Lookup(*plantID)
	if !ok {
		panic(fmt.Sprintf("unknown plant id %q", *plantID))
	}

	fmt.Printf("Plant: %s (%s)  heat_rate=%.0f BTU/kWh  capacity_factor=%.2f\n",
		plant.Name, plant.ID, plant.HeatRateBTUPerKWh, plant.CapacityFactor)

	optResp, err := optimize.Run(optimize.Request{
		PlantID:              plant.ID,
		TargetLoadMW:         *loadMW,
		MaxGasBackupPct:      0.40,
		CommissioningYear:    plant.CommissioningYear,
		CostScenario:         *scenario,
		Latitude:             &plant.Latitude,
		GasHeatRateBTUPerKWh: &plant.HeatRateBTUPerKWh,
		GasCapacityFactor:    &plant.CapacityFactor,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nOptimize result (%s):\n", optResp.SolverStatus)
	fmt.Printf("  solar=%.1fMW  battery=%.1fMW/%.1fMWh  net_lcoe=$%.2f/MWh  gas_backup=%.1f%%\n",
		optResp.SolarCapacityMW, optResp.BatteryPowerMW, optResp.BatteryEnergyMWh, optResp.NetLCOE, optResp.GasBackupActual*100)

	byogResult, err := byog.Run(byog.Request{
		Site: byog.SiteContext{
			FacilityPeakLoadKW:       *loadMW * 1000,
			CurrentUtilityRateUSDKWh: 0.09,
			UtilityEscalationRatePct: 2.5,
		},
		Asset: byog.AssetParameters{
			TechnologyType:       "natural_gas",
			NameplateCapacityKW:  plant.CapacityMW * 1000,
			TurnkeyCapexUSDPerKW: 1200,
			FuelPriceUSDPerMMBtu: 3.50,
			HeatRateBTUPerKWh:    plant.HeatRateBTUPerKWh,
			AvailabilityFactor:   0.95,
		},
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nBYOG simulation:\n")
	fmt.Printf("  firm_capacity_required=%.1fMW  total_project_cost=$%.0f\n",
		byogResult.SummaryKPIs.FirmCapacityRequiredMW, byogResult.SummaryKPIs.TotalProjectCostUSD)
	fmt.Printf("  project_irr_unlevered=%.2f%%  npv=$%.0f  lcoe=$%.2f/MWh\n",
		byogResult.SummaryKPIs.ProjectIRRUnleveredPct, byogResult.SummaryKPIs.NPVUSD, byogResult.SummaryKPIs.LCOEUSDPerMWh)
	fmt.Printf("  lease_rate_calibration_applied=%v  applied_rate=$%.0f/MW-month\n",
		byogResult.SummaryKPIs.LeaseRateCalibrationApplied, byogResult.SummaryKPIs.AppliedLeaseRateUSDPerMWMonth)

	fmt.Printf("\nCash-flow waterfall (first %d of %d years):\n", min(5, len(byogResult.CashFlowWaterfall)), len(byogResult.CashFlowWaterfall))
	for i := 0; i < min(5, len(byogResult.CashFlowWaterfall)); i++ {
		row := byogResult.CashFlowWaterfall[i]
		fmt.Printf("  year=%-3d revenue=%10.0f opex=%10.0f net_cf=%10.0f cum=%10.0f\n",
			row.Year, row.GrossRevenueUSD, row.TotalOpexUSD, row.NetFreeCashFlowUSD, row.CumulativeCashFlowUSD)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
