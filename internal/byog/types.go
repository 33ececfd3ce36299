// Package byog implements the Bring-Your-Own-Generation/Capital financial
// engine: a deterministic capital stack rollup, priority-ordered resource
// sizing against a firm-capacity requirement, and an annual cash-flow
// projection with IRR-driven lease-rate calibration.
package byog

// SiteContext carries the caller's data-center load and utility context,
// bridged into the nested Model below rather than used directly.
type SiteContext struct {
	FacilityPeakLoadKW          float64 `json:"facility_peak_load_kw"`
	AnnualEnergyConsumptionKWh  *float64 `json:"annual_energy_consumption_kwh,omitempty"`
	CurrentUtilityRateUSDKWh    float64 `json:"current_utility_rate_usd_kwh"`
	UtilityEscalationRatePct    float64 `json:"utility_escalation_rate_pct"`
}

// AssetParameters describes the caller's existing (or planned) generation
// asset, bridged into the natural_gas resource-cost section.
type AssetParameters struct {
	TechnologyType        string  `json:"technology_type"`
	NameplateCapacityKW    float64 `json:"nameplate_capacity_kw"`
	TurnkeyCapexUSDPerKW   float64 `json:"turnkey_capex_usd_per_kw"`
	SoftCostsUSD           float64 `json:"soft_costs_usd"`
	FuelType               string  `json:"fuel_type"`
	FuelPriceUSDPerMMBtu   float64 `json:"fuel_price_usd_per_mmbtu"`
	FuelEscalatorPct       float64 `json:"fuel_escalator_pct"`
	HeatRateBTUPerKWh      float64 `json:"heat_rate_btu_kwh"`
	FixedOMUSDYear         float64 `json:"fixed_om_usd_year"`
	VariableOMUSDPerKWh    float64 `json:"variable_om_usd_kwh"`
	AvailabilityFactor     float64 `json:"availability_factor"`
}

// FinancialAssumptions overrides a handful of top-level analysis settings.
type FinancialAssumptions struct {
	FederalTaxRatePct    float64 `json:"federal_tax_rate_pct"`
	DiscountRatePct      float64 `json:"discount_rate_pct"`
	DebtEquityRatioPct   float64 `json:"debt_equity_ratio_pct"`
	LoanInterestRatePct  float64 `json:"loan_interest_rate_pct"`
	LoanTermYears        int     `json:"loan_term_years"`
	ITCRatePct           float64 `json:"itc_rate_pct"`
	InflationRatePct     float64 `json:"inflation_rate_pct"`
}

// Request bundles the three payload sections plus free-form byoc_inputs
// overrides (deep-merged over the built-in default tree).
type Request struct {
	Site        SiteContext
	Asset       AssetParameters
	Fin         *FinancialAssumptions
	BYOCInputs  map[string]any
}

// Model is the fully-resolved nested configuration tree the engine
// actually computes against, after defaulting, override merge, and the
// compatibility bridge from Site/Asset/Fin.
type Model struct {
	SiteLand            SiteLand            `json:"site_land"`
	Preconstruction     Preconstruction     `json:"preconstruction"`
	PowerInfrastructure PowerInfrastructure `json:"power_infrastructure"`
	DataCenter          DataCenter          `json:"data_center"`
	LoadProfile         LoadProfile         `json:"load_profile"`
	Curtailment         Curtailment         `json:"curtailment"`
	Firmness            Firmness            `json:"firmness"`
	ResourceCosts       ResourceCosts       `json:"resource_costs"`
	Revenue             Revenue             `json:"revenue"`
	Opex                Opex                `json:"opex"`
	Analysis            Analysis            `json:"analysis"`
}

type SiteLand struct {
	LandParcelSizeAcres float64 `json:"land_parcel_size_acres"`
	LandCostPerAcreUSD  float64 `json:"land_cost_per_acre_usd"`
}

type Preconstruction struct {
	PermittingRegulatoryUSD     float64 `json:"permitting_regulatory_usd"`
	EnvironmentalStudiesUSD     float64 `json:"environmental_studies_usd"`
	GeotechEngineeringUSD       float64 `json:"geotech_engineering_usd"`
	InterconnectionStudiesUSD   float64 `json:"interconnection_studies_usd"`
	LegalFeesUSD                float64 `json:"legal_fees_usd"`
	TitleInsuranceUSD           float64 `json:"title_insurance_usd"`
	DevelopmentMgmtUSD          float64 `json:"development_mgmt_usd"`
	SitePreparationUSD          float64 `json:"site_preparation_usd"`
	UtilityCoordinationUSD      float64 `json:"utility_coordination_usd"`
	FinancingFeesUSD            float64 `json:"financing_fees_usd"`
	ContingencyPct              float64 `json:"contingency_pct"`
}

type PowerInfrastructure struct {
	SubstationCapacityMVA         float64 `json:"substation_capacity_mva"`
	SubstationCostPerMVAUSD       float64 `json:"substation_cost_per_mva_usd"`
	TransmissionDistanceMiles     float64 `json:"transmission_distance_miles"`
	TransmissionCostPerMileUSD    float64 `json:"transmission_cost_per_mile_usd"`
	NetworkUpgradesUSD            float64 `json:"network_upgrades_usd"`
	DistributionInfraUSD          float64 `json:"distribution_infra_usd"`
	ContingencyPct                float64 `json:"contingency_pct"`
}

type DataCenter struct {
	TotalITCapacityMW        float64 `json:"total_it_capacity_mw"`
	ConstructionCostPerKWUSD float64 `json:"construction_cost_per_kw_usd"`
	FFEUSD                   float64 `json:"ffe_usd"`
	OwnersCostsUSD           float64 `json:"owners_costs_usd"`
	ContingencyPct           float64 `json:"contingency_pct"`
}

type LoadProfile struct {
	PeakITLoadMW        float64 `json:"peak_it_load_mw"`
	MinOperatingLoadMW  float64 `json:"min_operating_load_mw"`
	LoadFactor          float64 `json:"load_factor"`
}

type CurtailmentTier struct {
	Name              string  `json:"name"`
	MW                float64 `json:"mw"`
	MaxEventHours     float64 `json:"max_event_hours"`
	MaxEvents         float64 `json:"max_events"`
	RevenueLossPerMWh float64 `json:"revenue_loss_per_mwh"`
}

type Curtailment struct {
	Tiers []CurtailmentTier `json:"tiers"`
}

type Firmness struct {
	BaseFirmGenerationRequirementPct float64 `json:"base_firm_generation_requirement_pct"`
	PlanningReserveMarginPct         float64 `json:"planning_reserve_margin_pct"`
}

type SolarCosts struct {
	CapacityFactorPct        float64 `json:"capacity_factor_pct"`
	CapitalCostPerKWUSD      float64 `json:"capital_cost_per_kw_usd"`
	FixedOMPerKWYearUSD      float64 `json:"fixed_om_per_kw_year_usd"`
	UsefulLifeYears          int     `json:"useful_life_years"`
	DegradationPct           float64 `json:"degradation_pct"`
	LandRequirementAcresPerMW float64 `json:"land_requirement_acres_per_mw"`
	ELCC                     float64 `json:"elcc"`
	MaxDeployableMW          float64 `json:"max_deployable_mw,omitempty"`
}

type WindCosts struct {
	CapacityFactorPct   float64 `json:"capacity_factor_pct"`
	CapitalCostPerKWUSD float64 `json:"capital_cost_per_kw_usd"`
	FixedOMPerKWYearUSD float64 `json:"fixed_om_per_kw_year_usd"`
	UsefulLifeYears     int     `json:"useful_life_years"`
	ELCC                float64 `json:"elcc"`
}

type BatteryCosts struct {
	DurationHours             float64 `json:"duration_hours"`
	PowerCostPerKWUSD         float64 `json:"power_cost_per_kw_usd"`
	EnergyCostPerKWhUSD       float64 `json:"energy_cost_per_kwh_usd"`
	FixedOMPerKWYearUSD       float64 `json:"fixed_om_per_kw_year_usd"`
	VariableOMPerMWhUSD       float64 `json:"variable_om_per_mwh_usd"`
	RoundTripEfficiencyPct    float64 `json:"round_trip_efficiency_pct"`
	UsefulLifeYears           int     `json:"useful_life_years"`
	ELCC                      float64 `json:"elcc"`
}

type NaturalGasCosts struct {
	CapitalCostPerKWUSD       float64 `json:"capital_cost_per_kw_usd"`
	FixedOMPerKWYearUSD       float64 `json:"fixed_om_per_kw_year_usd"`
	VariableOMPerMWhUSD       float64 `json:"variable_om_per_mwh_usd"`
	HeatRateMMBtuPerMWh       float64 `json:"heat_rate_mmbtu_per_mwh"`
	FuelCostUSDPerMMBtu       float64 `json:"fuel_cost_usd_per_mmbtu"`
	FuelPriceEscalationPct    float64 `json:"fuel_price_escalation_pct"`
	UsefulLifeYears           int     `json:"useful_life_years"`
	ELCC                      float64 `json:"elcc"`
	SeedNameplateMW           float64 `json:"seed_nameplate_mw,omitempty"`
}

type ESAGridCosts struct {
	Available                  bool    `json:"available"`
	MaxCapacityMW              float64 `json:"max_capacity_mw"`
	EnergyRateUSDPerMWh        float64 `json:"energy_rate_usd_per_mwh"`
	EnergyEscalationPct        float64 `json:"energy_escalation_pct"`
	DemandChargeUSDPerMWMonth  float64 `json:"demand_charge_usd_per_mw_month"`
	TransmissionImportLimitMW  float64 `json:"transmission_import_limit_mw"`
	ELCC                       float64 `json:"elcc"`
}

type ResourceCosts struct {
	Solar      SolarCosts      `json:"solar"`
	Wind       WindCosts       `json:"wind"`
	Battery    BatteryCosts    `json:"battery"`
	NaturalGas NaturalGasCosts `json:"natural_gas"`
	ESAGrid    ESAGridCosts    `json:"esa_grid"`
}

type Revenue struct {
	LeasableITCapacityMW               float64 `json:"leasable_it_capacity_mw"`
	RevenueModelType                   string  `json:"revenue_model_type"`
	BaseLeaseRateWholesaleUSDPerMWMonth float64 `json:"base_lease_rate_wholesale_usd_per_mw_month"`
	BaseLeaseRateColoUSDPerKWMonth      float64 `json:"base_lease_rate_colo_usd_per_kw_month"`
	ContractEscalationRatePct          float64 `json:"contract_escalation_rate_pct"`
	AbsorptionPeriodYears              float64 `json:"absorption_period_years"`
	StabilizedOccupancyPct             float64 `json:"stabilized_occupancy_pct"`
	DynamicLeasePricingEnabled         bool    `json:"dynamic_lease_pricing_enabled"`
	TargetIRRBufferPct                 float64 `json:"target_irr_buffer_pct"`
	MaxLeaseRateUSDPerMWMonth          float64 `json:"max_lease_rate_usd_per_mw_month"`
}

type Opex struct {
	BaseFacilityOpsUSDPerMWYear float64 `json:"base_facility_ops_usd_per_mw_year"`
	PropertyTaxRatePct          float64 `json:"property_tax_rate_pct"`
	InsuranceUSDPerMWYear       float64 `json:"insurance_usd_per_mw_year"`
	AssetMgmtFeePct             float64 `json:"asset_mgmt_fee_pct"`
	OtherGAUSDPerYear           float64 `json:"other_ga_usd_per_year"`
	OpexEscalationRatePct       float64 `json:"opex_escalation_rate_pct"`
}

type Analysis struct {
	RequiredEquityReturnPct   float64 `json:"required_equity_return_pct"`
	DiscountRatePct           float64 `json:"discount_rate_pct"`
	AnalysisPeriodYears       int     `json:"analysis_period_years"`
	GeneralInflationRatePct   float64 `json:"general_inflation_rate_pct"`
	MaxGasBackupPct           float64 `json:"max_gas_backup_pct,omitempty"`
}
