package byog

import (
	"math"

	"hybridretrofit/internal/costs"
)

// SummaryKPIs is the headline return/sizing metrics for a scenario.
type SummaryKPIs struct {
	ProjectIRRUnleveredPct     float64  `json:"project_irr_unlevered_pct"`
	ProjectIRRLeveredPct       float64  `json:"project_irr_levered_pct"`
	NPVUSD                     float64  `json:"npv_usd"`
	MOIC                       float64  `json:"moic"`
	SimplePaybackYears         *float64 `json:"simple_payback_years"`
	PaybackPeriodYears         *float64 `json:"payback_period_years"`
	LCOEUSDPerMWh              float64  `json:"lcoe_usd_mwh"`
	LCOEUSDPerKWh              float64  `json:"lcoe_usd_kwh"`
	AnnualRevenueLostUSD       float64  `json:"annual_revenue_lost_usd"`
	CoverageRatio              float64  `json:"coverage_ratio"`
	FirmCapacityRequiredMW     float64  `json:"firm_capacity_required_mw"`
	FirmCapacityAvailableMW    float64  `json:"firm_capacity_available_mw"`
	TotalProjectCostUSD        float64  `json:"total_project_cost_usd"`
	MinDSCR                    float64  `json:"min_dscr"`
	BaseLeaseRateUSDPerMWMonth float64  `json:"base_lease_rate_usd_per_mw_month"`
	AppliedLeaseRateUSDPerMWMonth float64 `json:"applied_lease_rate_usd_per_mw_month"`
	LeaseRateCalibrationApplied bool    `json:"lease_rate_calibration_applied"`
	TargetIRRPct               float64  `json:"target_irr_pct"`
	HurdleIRRPct                float64 `json:"hurdle_irr_pct"`
	PositiveCashflowYears       int     `json:"positive_cashflow_years"`
}

// CapitalCostsBreakdown mirrors capitalCosts for API consumption.
type CapitalCostsBreakdown struct {
	LandCostUSD                   float64 `json:"land_cost_usd"`
	TotalPreconstructionUSD        float64 `json:"total_preconstruction_usd"`
	TotalPowerInfrastructureUSD    float64 `json:"total_power_infrastructure_usd"`
	PoweredLandCostUSD             float64 `json:"powered_land_cost_usd"`
	TotalDataCenterCapexUSD        float64 `json:"total_data_center_capex_usd"`
	SolarCapexUSD                  float64 `json:"solar_capex_usd"`
	WindCapexUSD                   float64 `json:"wind_capex_usd"`
	BatteryCapexUSD                float64 `json:"battery_capex_usd"`
	GasCapexUSD                    float64 `json:"gas_capex_usd"`
	TotalBYOCCapexUSD              float64 `json:"total_byoc_capex_usd"`
	TotalProjectCostUSD            float64 `json:"total_project_cost_usd"`
}

type ResourceMixBreakdown struct {
	SolarMW                   float64 `json:"solar_mw"`
	SolarFirmAccreditedMW     float64 `json:"solar_firm_accredited_mw"`
	AnnualSolarGenerationMWh  float64 `json:"annual_solar_generation_mwh"`
	BatteryPowerMW            float64 `json:"battery_power_mw"`
	BatteryEnergyMWh          float64 `json:"battery_energy_mwh"`
	BatteryFirmAccreditedMW   float64 `json:"battery_firm_accredited_mw"`
	AnnualBatteryDischargeMWh float64 `json:"annual_battery_discharge_mwh"`
	GasMW                     float64 `json:"gas_mw"`
	GasFirmAccreditedMW       float64 `json:"gas_firm_accredited_mw"`
	AnnualGasGenerationMWh    float64 `json:"annual_gas_generation_mwh"`
	ESAMW                     float64 `json:"esa_mw"`
	ESAFirmAccreditedMW       float64 `json:"esa_firm_accredited_mw"`
	AnnualESAImportMWh        float64 `json:"annual_esa_import_mwh"`
	AnnualEnergyDemandMWh     float64 `json:"annual_energy_demand_mwh"`
	TotalFirmAccreditedMW     float64 `json:"total_firm_accredited_mw"`
	CoverageRatio             float64 `json:"coverage_ratio"`
}

type CurtailmentBreakdown struct {
	EstimatedAnnualCurtailmentMWh           float64 `json:"estimated_annual_curtailment_mwh"`
	WeightedAverageCurtailmentCostUSDPerMWh float64 `json:"weighted_average_curtailment_cost_usd_per_mwh"`
	AnnualRevenueLostUSD                    float64 `json:"annual_revenue_lost_usd"`
}

type PricingBreakdown struct {
	BaseLeaseRateUSDPerMWMonth    float64 `json:"base_lease_rate_usd_per_mw_month"`
	AppliedLeaseRateUSDPerMWMonth float64 `json:"applied_lease_rate_usd_per_mw_month"`
	LeaseRateCalibrationApplied   bool    `json:"lease_rate_calibration_applied"`
	TargetIRRPct                  float64 `json:"target_irr_pct"`
	HurdleIRRPct                  float64 `json:"hurdle_irr_pct"`
	PositiveCashflowYears          int    `json:"positive_cashflow_years"`
}

type CalculationBreakdown struct {
	CapitalCosts CapitalCostsBreakdown `json:"capital_costs"`
	ResourceMix  ResourceMixBreakdown  `json:"resource_mix"`
	Curtailment  CurtailmentBreakdown  `json:"curtailment"`
	Pricing      PricingBreakdown      `json:"pricing"`
}

// Result is the full simulation output: headline KPIs, the calculation
// trail that produced them, and the year-by-year cash-flow waterfall.
type Result struct {
	SummaryKPIs          SummaryKPIs           `json:"summary_kpis"`
	CalculationBreakdown CalculationBreakdown  `json:"calculation_breakdown"`
	CashFlowWaterfall    []CashflowYear        `json:"cash_flow_waterfall"`
}

// Run builds the resolved Model from req and executes the full simulation:
// capital stack, priority resource sizing, curtailment pricing, cash-flow
// projection, IRR, and (if enabled) lease-rate calibration.
func Run(req Request) (Result, error) {
	model, err := BuildModel(req)
	if err != nil {
		return Result{}, err
	}
	return RunModel(model)
}

// RunModel executes the simulation against an already-resolved Model.
func RunModel(m Model) (Result, error) {
	ana := m.Analysis
	discount := normalizePct(ana.DiscountRatePct)
	periodYears := ana.AnalysisPeriodYears

	mix := sizeResources(m)
	capital := computeCapitalCosts(m, mix)
	builder := newCashflowBuilder(m, mix, capital)

	leaseType := m.Revenue.RevenueModelType
	var baseLeaseRate float64
	if leaseType == "colo" {
		baseLeaseRate = m.Revenue.BaseLeaseRateColoUSDPerKWMonth * 1000.0
	} else {
		baseLeaseRate = m.Revenue.BaseLeaseRateWholesaleUSDPerMWMonth
	}

	rows, fcf, payback, positiveYears := builder.build(baseLeaseRate)
	irr, irrOK := IRRBisection(fcf)
	irrForCheck := irr
	if !irrOK {
		irrForCheck = -0.99
	}

	dynamicEnabled := m.Revenue.DynamicLeasePricingEnabled
	hurdleIRR := normalizePct(ana.RequiredEquityReturnPct)
	targetBuffer := normalizePct(m.Revenue.TargetIRRBufferPct)
	targetIRR := math.Max(hurdleIRR+targetBuffer, hurdleIRR)

	appliedLeaseRate := baseLeaseRate
	calibrationApplied := false

	requiredPositiveYears := int(math.Max(1, math.Floor(float64(periodYears)*0.6)))
	needsLift := irrForCheck < targetIRR || positiveYears < requiredPositiveYears

	if dynamicEnabled && needsLift {
		calib := calibrateLeaseRate(builder, baseLeaseRate, targetIRR, irrForCheck, positiveYears)
		if calib.applied {
			appliedLeaseRate = calib.appliedRate
			rows, fcf, payback = calib.rows, calib.series, calib.payback
			irr = calib.irr
			irrOK = true
			positiveYears = calib.positiveYears
			calibrationApplied = true
		}
	}

	if !irrOK {
		irr, irrOK = IRRBisection(fcf)
	}
	irrPct := 0.0
	if irrOK && !math.IsNaN(irr) && !math.IsInf(irr, 0) {
		irrPct = irr * 100.0
	}

	npvValue := NPV(discount, fcf)
	var fcfSum float64
	for _, cf := range fcf[1:] {
		fcfSum += cf
	}
	moic := fcfSum / math.Max(math.Abs(fcf[0]), epsilon)

	annualizedCapex := capital.totalProjectCost * costs.CRF(discount, int(math.Max(float64(periodYears), 1)))
	year1Power := 0.0
	if len(rows) > 0 {
		year1Power = rows[0].TotalPowerCostsUSD
	}
	lcoeMWh := (annualizedCapex + year1Power) / math.Max(mix.annualEnergy, epsilon)

	summary := SummaryKPIs{
		ProjectIRRUnleveredPct:        round(irrPct, 3),
		ProjectIRRLeveredPct:          round(irrPct, 3),
		NPVUSD:                        round(npvValue, 2),
		MOIC:                          round(moic, 4),
		SimplePaybackYears:            roundedPtr(payback, 3),
		PaybackPeriodYears:            roundedPtr(payback, 3),
		LCOEUSDPerMWh:                 round(lcoeMWh, 3),
		LCOEUSDPerKWh:                 round(lcoeMWh/1000.0, 6),
		AnnualRevenueLostUSD:          round(mix.annualRevenueLost, 2),
		CoverageRatio:                 round(mix.coverageRatio, 6),
		FirmCapacityRequiredMW:        round(mix.grossFirmReq, 6),
		FirmCapacityAvailableMW:       round(mix.totalFirmAccredited, 6),
		TotalProjectCostUSD:           round(capital.totalProjectCost, 2),
		MinDSCR:                       999.0,
		BaseLeaseRateUSDPerMWMonth:    round(baseLeaseRate, 2),
		AppliedLeaseRateUSDPerMWMonth: round(appliedLeaseRate, 2),
		LeaseRateCalibrationApplied:   calibrationApplied,
		TargetIRRPct:                  round(targetIRR*100.0, 3),
		HurdleIRRPct:                  round(hurdleIRR*100.0, 3),
		PositiveCashflowYears:         positiveYears,
	}

	breakdown := CalculationBreakdown{
		CapitalCosts: CapitalCostsBreakdown{
			LandCostUSD:                 round(capital.landCost, 2),
			TotalPreconstructionUSD:     round(capital.totalPrecon, 2),
			TotalPowerInfrastructureUSD: round(capital.totalPowerInfra, 2),
			PoweredLandCostUSD:          round(capital.poweredLandCost, 2),
			TotalDataCenterCapexUSD:     round(capital.totalDCCapex, 2),
			SolarCapexUSD:               round(capital.solarCapex, 2),
			WindCapexUSD:                round(capital.windCapex, 2),
			BatteryCapexUSD:             round(capital.batteryCapex, 2),
			GasCapexUSD:                 round(capital.gasCapex, 2),
			TotalBYOCCapexUSD:           round(capital.totalBYOCCapex, 2),
			TotalProjectCostUSD:         round(capital.totalProjectCost, 2),
		},
		ResourceMix: ResourceMixBreakdown{
			SolarMW:                   round(mix.solarMW, 6),
			SolarFirmAccreditedMW:     round(mix.solarELCC, 6),
			AnnualSolarGenerationMWh:  round(mix.solarAnnualGen, 3),
			BatteryPowerMW:            round(mix.batteryPowerMW, 6),
			BatteryEnergyMWh:          round(mix.batteryEnergyMWh, 6),
			BatteryFirmAccreditedMW:   round(mix.batteryELCC, 6),
			AnnualBatteryDischargeMWh: round(mix.batteryAnnualDischarge, 3),
			GasMW:                     round(mix.gasCapacityMW, 6),
			GasFirmAccreditedMW:       round(mix.gasELCC, 6),
			AnnualGasGenerationMWh:    round(mix.gasAnnualGeneration, 3),
			ESAMW:                     round(mix.esaCapacity, 6),
			ESAFirmAccreditedMW:       round(mix.esaELCC, 6),
			AnnualESAImportMWh:        round(mix.esaAnnualImport, 3),
			AnnualEnergyDemandMWh:     round(mix.annualEnergy, 3),
			TotalFirmAccreditedMW:     round(mix.totalFirmAccredited, 6),
			CoverageRatio:             round(mix.coverageRatio, 6),
		},
		Curtailment: CurtailmentBreakdown{
			EstimatedAnnualCurtailmentMWh:           round(mix.estimatedCurtailmentMWh, 2),
			WeightedAverageCurtailmentCostUSDPerMWh: round(mix.weightedCurtailCost, 3),
			AnnualRevenueLostUSD:                    round(mix.annualRevenueLost, 2),
		},
		Pricing: PricingBreakdown{
			BaseLeaseRateUSDPerMWMonth:    round(baseLeaseRate, 2),
			AppliedLeaseRateUSDPerMWMonth: round(appliedLeaseRate, 2),
			LeaseRateCalibrationApplied:   calibrationApplied,
			TargetIRRPct:                  round(targetIRR*100.0, 3),
			HurdleIRRPct:                  round(hurdleIRR*100.0, 3),
			PositiveCashflowYears:         positiveYears,
		},
	}

	return Result{
		SummaryKPIs:          summary,
		CalculationBreakdown: breakdown,
		CashFlowWaterfall:    rows,
	}, nil
}

func roundedPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r := round(*v, places)
	return &r
}
