// Package optimize orchestrates the joint solar/battery sizing and dispatch
// pipeline: resolve a solar profile, derive gas costs, optionally restrict
// conflict hours, solve the MILP, and assemble a priced LCOE breakdown.
package optimize

import (
	"log"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/conflict"
	"hybridretrofit/internal/costs"
	"hybridretrofit/internal/milp"
	"hybridretrofit/internal/scenarios"
	"hybridretrofit/internal/solarprofile"
)

// Defaults applied when a request leaves the corresponding field unset.
const (
	DefaultGasHeatRateBTUPerKWh = 8500.0
	DefaultGasCapacityFactor    = 0.30
	DefaultLatitude             = 35.0
	DefaultGasFixedOMPerKWYear  = 15.0
)

// Request is one optimize call's inputs.
type Request struct {
	PlantID              string
	TargetLoadMW         float64
	MaxGasBackupPct      float64
	CommissioningYear    int
	CostScenario         string
	ConflictPct          *float64
	SolarProfile         []float64
	Latitude             *float64
	GasHeatRateBTUPerKWh *float64
	GasCapacityFactor    *float64
	SolarCFHint          *float64
	MaxSolarMW           *float64
}

// LCOEBreakdown is the per-component contribution to net LCOE, in $/MWh.
type LCOEBreakdown struct {
	SolarCost           float64 `json:"solar_cost"`
	BatteryCost         float64 `json:"battery_cost"`
	GasCost             float64 `json:"gas_cost"`
	ExcessSolarRevenue  float64 `json:"excess_solar_revenue"`
	Total               float64 `json:"total"`
}

// Response is the full optimize result.
type Response struct {
	SolarCapacityMW   float64             `json:"solar_capacity_mw"`
	BatteryPowerMW    float64             `json:"battery_power_mw"`
	BatteryEnergyMWh  float64             `json:"battery_energy_mwh"`
	NetLCOE           float64             `json:"net_lcoe"`
	LCOEGasOnly       float64             `json:"lcoe_gas_only"`
	GasBackupActual   float64             `json:"gas_backup_actual"`
	EmissionsFactor   float64             `json:"emissions_factor"`
	ExcessSolarMWh    float64             `json:"excess_solar_mwh"`
	SolarToLoadRatio  float64             `json:"solar_to_load_ratio"`
	ConflictHours     *int                `json:"conflict_hours"`
	SolverStatus      string              `json:"solver_status"`
	LCOEBreakdown     LCOEBreakdown       `json:"lcoe_breakdown"`
	HourlyDispatch    []milp.DispatchRow  `json:"hourly_dispatch"`
}

// Run executes the full sizing pipeline for req, consulting the process
// cache first and populating it on a fresh solve.
func Run(req Request) (Response, error) {
	cache := GetCache()
	key := RequestKey(req)
	if resp, ok := cache.Get(key); ok {
		return resp, nil
	}

	resp, err := run(req)
	if err != nil {
		return Response{}, err
	}

	cache.Set(key, resp)
	return resp, nil
}

func run(req Request) (Response, error) {
	scenario, ok := scenarios.Lookup(req.CostScenario)
	if !ok {
		return Response{}, apperr.Validation("unknown cost scenario %q", req.CostScenario)
	}
	if req.TargetLoadMW <= 0 {
		return Response{}, apperr.Validation("target_load_mw must be positive")
	}

	log.Printf("[optimize] plant=%s load=%.1fMW year=%d scenario=%s",
		req.PlantID, req.TargetLoadMW, req.CommissioningYear, req.CostScenario)

	// 1. Solar profile
	latitude := DefaultLatitude
	if req.Latitude != nil {
		latitude = *req.Latitude
	}

	var profile288 []float64
	switch {
	case req.SolarProfile == nil:
		profile288 = solarprofile.Generate(latitude)
	case len(req.SolarProfile) == solarprofile.HoursPerRepr:
		profile288 = req.SolarProfile
	case len(req.SolarProfile) == 8760:
		compressed, err := solarprofile.CompressTo288(req.SolarProfile)
		if err != nil {
			return Response{}, apperr.Internal(err)
		}
		profile288 = compressed
	default:
		return Response{}, apperr.Validation(
			"solar_profile must have 288 or 8760 entries, got %d", len(req.SolarProfile))
	}

	if req.SolarCFHint != nil && *req.SolarCFHint > 0 {
		profile288 = solarprofile.RescaleToHint(profile288, *req.SolarCFHint)
	}

	// 2. Gas parameters
	gasHeatRate := DefaultGasHeatRateBTUPerKWh
	if req.GasHeatRateBTUPerKWh != nil {
		gasHeatRate = *req.GasHeatRateBTUPerKWh
	}
	gasVarCost := costs.GasVariableCost(gasHeatRate, scenario.GasPricePerMMBtu)
	gasCapacityMW := req.TargetLoadMW // existing plant assumed always-available

	// 3. Conflict hours
	var conflictSet map[int]bool
	var conflictCount *int
	if req.ConflictPct != nil && *req.ConflictPct > 0 {
		conflictSet = conflict.Generate(*req.ConflictPct, profile288)
		n := len(conflictSet)
		conflictCount = &n
	}

	// 4. MILP solve
	maxSolarMW := 0.0
	if req.MaxSolarMW != nil {
		maxSolarMW = *req.MaxSolarMW
	}

	buildParams := milp.BuildParams{
		LoadMW:                        req.TargetLoadMW,
		Profile:                       profile288,
		GasCapacityMW:                 gasCapacityMW,
		MaxGasBackupPct:               req.MaxGasBackupPct,
		MaxSolarMW:                    maxSolarMW,
		ConflictHours:                 conflictSet,
		InverterEfficiency:            scenario.InverterEfficiency,
		BatteryRTE:                    scenario.BatteryRTE,
		SolarAnnualCostPerMW:          (scenario.SolarCapexPerKW*costs.CRF(scenario.WACC, scenario.SolarLifeYears) + scenario.SolarOMPerKWYear) * 1000.0,
		BatteryEnergyAnnualCostPerMWh: scenario.BatteryEnergyCapexPerKWh * costs.CRF(scenario.WACC, scenario.BatteryLifeYears) * 1000.0,
		BatteryPowerAnnualCostPerMW:   (scenario.BatteryPowerCapexPerKW*costs.CRF(scenario.WACC, scenario.BatteryLifeYears) + scenario.BatteryOMPerKWYear) * 1000.0,
		GasVariableCostPerMWh:         gasVarCost,
	}

	dispatch := milp.Run(buildParams)

	// 5. Annual costs
	annualLoadMWh := req.TargetLoadMW * 8760
	annual := costs.ComputeAnnualCosts(costs.AnnualCostsParams{
		SolarMW:               dispatch.SolarCapacityMW,
		BattPowerMW:           dispatch.BatteryPowerMW,
		BattEnergyMWh:         dispatch.BatteryEnergyMWh,
		GasGenMWh:             dispatch.GasGenTotalMWh,
		GasVariableCost:       gasVarCost,
		SolarCapexPerKW:       scenario.SolarCapexPerKW,
		SolarOMPerKWYear:      scenario.SolarOMPerKWYear,
		SolarLifeYears:        scenario.SolarLifeYears,
		BattEnergyCapexPerKWh: scenario.BatteryEnergyCapexPerKWh,
		BattPowerCapexPerKW:   scenario.BatteryPowerCapexPerKW,
		BattOMPerKWYear:       scenario.BatteryOMPerKWYear,
		BattLifeYears:         scenario.BatteryLifeYears,
		WACC:                  scenario.WACC,
	})

	// 6. Net LCOE
	netLCOE := 0.0
	if annualLoadMWh > 0 {
		netLCOE = annual.Total / annualLoadMWh
	}

	// 7. Gas-only reference LCOE
	gasCF := DefaultGasCapacityFactor
	if req.GasCapacityFactor != nil {
		gasCF = *req.GasCapacityFactor
	}
	gasCF = clamp(gasCF, 0.05, 0.95)
	lcoeGasOnly := costs.GasOnlyLCOE(costs.GasOnlyLCOEParams{
		HeatRateBTUPerKWh: gasHeatRate,
		GasPricePerMMBtu:  scenario.GasPricePerMMBtu,
		FixedOMPerKWYear:  DefaultGasFixedOMPerKWYear,
		CapacityFactor:    gasCF,
		WACC:              scenario.WACC,
		LifeYears:         scenario.SolarLifeYears,
	})

	gasBackupActual := 0.0
	if annualLoadMWh > 0 {
		gasBackupActual = dispatch.GasGenTotalMWh / annualLoadMWh
	}
	excessSolarMWh := dispatch.SolarGenTotalMWh - annualLoadMWh
	if excessSolarMWh < 0 {
		excessSolarMWh = 0
	}
	solarToLoadRatio := 0.0
	if req.TargetLoadMW > 0 {
		solarToLoadRatio = dispatch.SolarCapacityMW / req.TargetLoadMW
	}

	// 8. Emissions
	emissionsFactor := costs.EmissionsFactor(gasHeatRate, dispatch.GasGenTotalMWh, annualLoadMWh)

	// 9. Assemble response
	breakdown := LCOEBreakdown{Total: round2(netLCOE)}
	if annualLoadMWh > 0 {
		breakdown.SolarCost = round2(annual.SolarCost / annualLoadMWh)
		breakdown.BatteryCost = round2(annual.BatteryCost / annualLoadMWh)
		breakdown.GasCost = round2(annual.GasCost / annualLoadMWh)
	}

	return Response{
		SolarCapacityMW:  round2(dispatch.SolarCapacityMW),
		BatteryPowerMW:   round2(dispatch.BatteryPowerMW),
		BatteryEnergyMWh: round2(dispatch.BatteryEnergyMWh),
		NetLCOE:          round2(netLCOE),
		LCOEGasOnly:      round2(lcoeGasOnly),
		GasBackupActual:  round4(gasBackupActual),
		EmissionsFactor:  round2(emissionsFactor),
		ExcessSolarMWh:   round1(excessSolarMWh),
		SolarToLoadRatio: round2(solarToLoadRatio),
		ConflictHours:    conflictCount,
		SolverStatus:     dispatch.SolverStatus,
		LCOEBreakdown:    breakdown,
		HourlyDispatch:   dispatch.Dispatch,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 { return roundTo(v, 2) }
func round1(v float64) float64 { return roundTo(v, 1) }
func round4(v float64) float64 { return roundTo(v, 4) }
