package models

import (
	"hybridretrofit/internal/byog"
	"hybridretrofit/internal/optimize"
)

// OptimizeRequest is the request body for POST /api/v1/optimize.
type OptimizeRequest struct {
	PlantID              string    `json:"plant_id" binding:"required"`
	TargetLoadMW         float64   `json:"target_load_mw" binding:"required,gt=0"`
	MaxGasBackupPct      float64   `json:"max_gas_backup_pct" binding:"gte=0,lte=1"`
	CommissioningYear    int       `json:"commissioning_year" binding:"omitempty,gte=2024,lte=2040"`
	CostScenario         string    `json:"cost_scenario"`
	ConflictPct          *float64  `json:"conflict_pct,omitempty" binding:"omitempty,gte=0,lte=1"`
	SolarProfile         []float64 `json:"solar_profile,omitempty"`
	Latitude             *float64  `json:"latitude,omitempty"`
	GasHeatRateBTUPerKWh *float64  `json:"gas_heat_rate_btu_kwh,omitempty" binding:"omitempty,gt=0"`
	GasCapacityFactor    *float64  `json:"gas_capacity_factor,omitempty" binding:"omitempty,gte=0,lte=1"`
	SolarCFHint          *float64  `json:"solar_cf_hint,omitempty" binding:"omitempty,gte=0"`
	MaxSolarMW           *float64  `json:"max_solar_mw,omitempty" binding:"omitempty,gte=0"`
}

// DefaultsApplied fills in OptimizeRequest's Pydantic-style field defaults
// (cost_scenario="base", commissioning_year=2028) when the caller's JSON
// omitted them entirely. max_gas_backup_pct has no default: an omitted
// value stays 0, which allows no gas dispatch.
func (r *OptimizeRequest) DefaultsApplied() {
	if r.CostScenario == "" {
		r.CostScenario = "base"
	}
	if r.CommissioningYear == 0 {
		r.CommissioningYear = 2028
	}
}

// ToOptimizeRequest converts the wire request into the engine's Request type.
func (r OptimizeRequest) ToOptimizeRequest() optimize.Request {
	return optimize.Request{
		PlantID:              r.PlantID,
		TargetLoadMW:         r.TargetLoadMW,
		MaxGasBackupPct:      r.MaxGasBackupPct,
		CommissioningYear:    r.CommissioningYear,
		CostScenario:         r.CostScenario,
		ConflictPct:          r.ConflictPct,
		SolarProfile:         r.SolarProfile,
		Latitude:             r.Latitude,
		GasHeatRateBTUPerKWh: r.GasHeatRateBTUPerKWh,
		GasCapacityFactor:    r.GasCapacityFactor,
		SolarCFHint:          r.SolarCFHint,
		MaxSolarMW:           r.MaxSolarMW,
	}
}

// RequestMeta is an optional request tag carried through BYOG jobs; it has
// no effect on the calculation and exists for caller-side bookkeeping.
type RequestMeta struct {
	ScenarioID string `json:"scenario_id,omitempty"`
	JobType    string `json:"job_type,omitempty"` // "simulate" | "optimize" | "sensitivity"
}

// SiteContext is the wire shape of the caller's data-center load context.
type SiteContext struct {
	FacilityPeakLoadKW         float64  `json:"facility_peak_load_kw" binding:"required,gt=0"`
	AnnualEnergyConsumptionKWh *float64 `json:"annual_energy_consumption_kwh,omitempty" binding:"omitempty,gte=0"`
	CurrentUtilityRateUSDKWh   float64  `json:"current_utility_rate_usd_kwh" binding:"required,gt=0"`
	UtilityEscalationRatePct   float64  `json:"utility_escalation_rate_pct" binding:"gte=0,lte=15"`
}

// AssetParameters is the wire shape of the caller's generation asset.
type AssetParameters struct {
	TechnologyType       string  `json:"technology_type"`
	NameplateCapacityKW  float64 `json:"nameplate_capacity_kw" binding:"required,gt=0"`
	TurnkeyCapexUSDPerKW float64 `json:"turnkey_capex_usd_per_kw" binding:"gte=0"`
	SoftCostsUSD         float64 `json:"soft_costs_usd" binding:"gte=0"`
	FuelType             string  `json:"fuel_type"`
	FuelPriceUSDPerMMBtu float64 `json:"fuel_price_usd_per_mmbtu" binding:"required,gt=0"`
	FuelEscalatorPct     float64 `json:"fuel_escalator_pct" binding:"gte=0,lte=25"`
	HeatRateBTUPerKWh    float64 `json:"heat_rate_btu_kwh" binding:"required,gt=0"`
	FixedOMUSDYear       float64 `json:"fixed_om_usd_year" binding:"gte=0"`
	VariableOMUSDPerKWh  float64 `json:"variable_om_usd_kwh" binding:"gte=0"`
	AvailabilityFactor   float64 `json:"availability_factor" binding:"gt=0,lte=1"`
}

// FinancialAssumptions is the wire shape of optional financial overrides.
type FinancialAssumptions struct {
	FederalTaxRatePct   float64 `json:"federal_tax_rate_pct" binding:"gte=0,lte=100"`
	DiscountRatePct     float64 `json:"discount_rate_pct" binding:"gte=0,lte=100"`
	DebtEquityRatioPct  float64 `json:"debt_equity_ratio_pct" binding:"gte=0,lte=100"`
	LoanInterestRatePct float64 `json:"loan_interest_rate_pct" binding:"gte=0,lte=100"`
	LoanTermYears       int     `json:"loan_term_years" binding:"gte=1,lte=30"`
	ITCRatePct          float64 `json:"itc_rate_pct" binding:"gte=0,lte=100"`
	InflationRatePct    float64 `json:"inflation_rate_pct" binding:"gte=0,lte=100"`
}

// BYOGScenarioRequest is the request body for POST /api/v1/simulate.
type BYOGScenarioRequest struct {
	RequestMeta          *RequestMeta          `json:"request_meta,omitempty"`
	SiteContext          SiteContext           `json:"site_context" binding:"required"`
	AssetParameters      AssetParameters       `json:"asset_parameters" binding:"required"`
	FinancialAssumptions *FinancialAssumptions `json:"financial_assumptions,omitempty"`
	BYOCInputs           map[string]any        `json:"byoc_inputs,omitempty"`
}

// BYOGOptimizeRequest is the request body for POST /api/v1/optimize/byog.
type BYOGOptimizeRequest struct {
	RequestMeta          *RequestMeta          `json:"request_meta,omitempty"`
	SiteContext          SiteContext           `json:"site_context" binding:"required"`
	AssetParameters      AssetParameters       `json:"asset_parameters" binding:"required"`
	FinancialAssumptions *FinancialAssumptions `json:"financial_assumptions,omitempty"`
	BYOCInputs           map[string]any        `json:"byoc_inputs,omitempty"`
	OptimizationJob      map[string]any        `json:"optimization_job" binding:"required"`
}

// ToByogRequest converts the wire site/asset/financial sections into the
// engine's Request type, leaving BYOCInputs untouched.
func (r BYOGScenarioRequest) ToByogRequest() byog.Request {
	return byog.Request{
		Site:       toEngineSiteContext(r.SiteContext),
		Asset:      toEngineAssetParameters(r.AssetParameters),
		Fin:        toEngineFinancialAssumptions(r.FinancialAssumptions),
		BYOCInputs: r.BYOCInputs,
	}
}

// ToByogRequest converts the wire site/asset/financial sections into the
// engine's Request type, leaving BYOCInputs untouched.
func (r BYOGOptimizeRequest) ToByogRequest() byog.Request {
	return byog.Request{
		Site:       toEngineSiteContext(r.SiteContext),
		Asset:      toEngineAssetParameters(r.AssetParameters),
		Fin:        toEngineFinancialAssumptions(r.FinancialAssumptions),
		BYOCInputs: r.BYOCInputs,
	}
}

func toEngineSiteContext(s SiteContext) byog.SiteContext {
	return byog.SiteContext{
		FacilityPeakLoadKW:         s.FacilityPeakLoadKW,
		AnnualEnergyConsumptionKWh: s.AnnualEnergyConsumptionKWh,
		CurrentUtilityRateUSDKWh:   s.CurrentUtilityRateUSDKWh,
		UtilityEscalationRatePct:   s.UtilityEscalationRatePct,
	}
}

func toEngineAssetParameters(a AssetParameters) byog.AssetParameters {
	return byog.AssetParameters{
		TechnologyType:       a.TechnologyType,
		NameplateCapacityKW:  a.NameplateCapacityKW,
		TurnkeyCapexUSDPerKW: a.TurnkeyCapexUSDPerKW,
		SoftCostsUSD:         a.SoftCostsUSD,
		FuelType:             a.FuelType,
		FuelPriceUSDPerMMBtu: a.FuelPriceUSDPerMMBtu,
		FuelEscalatorPct:     a.FuelEscalatorPct,
		HeatRateBTUPerKWh:    a.HeatRateBTUPerKWh,
		FixedOMUSDYear:       a.FixedOMUSDYear,
		VariableOMUSDPerKWh:  a.VariableOMUSDPerKWh,
		AvailabilityFactor:   a.AvailabilityFactor,
	}
}

func toEngineFinancialAssumptions(f *FinancialAssumptions) *byog.FinancialAssumptions {
	if f == nil {
		return nil
	}
	return &byog.FinancialAssumptions{
		FederalTaxRatePct:   f.FederalTaxRatePct,
		DiscountRatePct:     f.DiscountRatePct,
		DebtEquityRatioPct:  f.DebtEquityRatioPct,
		LoanInterestRatePct: f.LoanInterestRatePct,
		LoanTermYears:       f.LoanTermYears,
		ITCRatePct:          f.ITCRatePct,
		InflationRatePct:    f.InflationRatePct,
	}
}

// OptimizationConstraint is one feasibility check in a multi-variable job.
type OptimizationConstraint struct {
	Metric   string  `json:"metric" binding:"required"`
	Operator string  `json:"operator" binding:"required,oneof=less_than less_than_equal greater_than greater_than_equal equal"`
	Value    float64 `json:"value"`
}
