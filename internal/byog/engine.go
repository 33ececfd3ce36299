package byog

import (
	"math"
	"sort"
)

const hoursPerYear = 8760.0
const epsilon = 1e-9

// CashflowYear is one year of the annual projection.
type CashflowYear struct {
	Year                  int     `json:"year"`
	OccupancyRate         float64 `json:"occupancy_rate"`
	GrossRevenueUSD       float64 `json:"gross_revenue_usd"`
	TotalPowerCostsUSD    float64 `json:"total_power_costs_usd"`
	CurtailmentLossUSD    float64 `json:"curtailment_loss_usd"`
	TotalOpexUSD          float64 `json:"total_opex_usd"`
	EBITDAUSD             float64 `json:"ebitda_usd"`
	DepreciationUSD       float64 `json:"depreciation_usd"`
	EBITUSD               float64 `json:"ebit_usd"`
	NetFreeCashFlowUSD    float64 `json:"net_free_cash_flow_usd"`
	CumulativeCashFlowUSD float64 `json:"cumulative_cash_flow_usd"`
}

// resourceMix is the deterministic priority-allocation result: firm
// capacity covered by ESA import, then solar, then gas, then battery.
type resourceMix struct {
	grossFirmReq   float64
	annualEnergy   float64

	esaCapacity float64
	esaELCC     float64

	solarMW          float64
	solarELCC        float64
	solarAnnualGen   float64

	gasCapacityMW float64
	gasELCC       float64

	batteryPowerMW   float64
	batteryEnergyMWh float64
	batteryELCC      float64

	esaAnnualImport        float64
	gasAnnualGeneration    float64
	batteryAnnualDischarge float64

	totalFirmAccredited float64
	coverageRatio       float64

	estimatedCurtailmentMWh float64
	weightedCurtailCost     float64
	annualRevenueLost       float64
}

// sizeResources runs the priority-ordered allocation: ESA grid import,
// then solar, then gas backup (bounded by the configured gas cap), then
// battery absorbs whatever firm gap remains.
func sizeResources(m Model) resourceMix {
	land := m.SiteLand
	load := m.LoadProfile
	firm := m.Firmness
	rc := m.ResourceCosts

	peakMW := load.PeakITLoadMW
	loadFactor := load.LoadFactor
	grossFirmReq := peakMW * normalizePct(firm.BaseFirmGenerationRequirementPct) *
		(1 + normalizePct(firm.PlanningReserveMarginPct))
	annualEnergy := peakMW * loadFactor * hoursPerYear

	esa := rc.ESAGrid
	esaCapacity := 0.0
	if esa.Available {
		esaCapacity = math.Min(math.Min(esa.MaxCapacityMW, esa.TransmissionImportLimitMW), grossFirmReq)
	}
	esaELCC := esaCapacity * esa.ELCC
	remainingFirm := math.Max(grossFirmReq-esaELCC, 0.0)

	solar := rc.Solar
	solarCF := normalizePct(solar.CapacityFactorPct)
	maxSolarByLand := land.LandParcelSizeAcres / math.Max(solar.LandRequirementAcresPerMW, epsilon)
	maxSolarDeployable := maxSolarByLand
	if solar.MaxDeployableMW > 0 {
		maxSolarDeployable = math.Max(solar.MaxDeployableMW, 0.0)
	}
	solarEnergyTarget := annualEnergy / math.Max(solarCF*hoursPerYear, epsilon)
	solarMW := math.Min(math.Min(maxSolarByLand, maxSolarDeployable), solarEnergyTarget)
	solarELCC := solarMW * solar.ELCC
	solarAnnualGen := solarMW * solarCF * hoursPerYear
	remainingFirm = math.Max(remainingFirm-solarELCC, 0.0)

	maxGasBackupPct := math.Max(0.0, math.Min(1.0, normalizePct(m.Analysis.MaxGasBackupPct)))
	maxGasELCCAllowed := grossFirmReq * maxGasBackupPct

	gas := rc.NaturalGas
	gasELCC := math.Min(remainingFirm, maxGasELCCAllowed)
	gasCapacityMW := math.Max(gasELCC/math.Max(gas.ELCC, epsilon), 0.0)

	remainingAfterGas := math.Max(remainingFirm-gasELCC, 0.0)
	battery := rc.Battery
	batteryELCC := remainingAfterGas
	batteryPowerMW := batteryELCC / math.Max(battery.ELCC, epsilon)
	batteryEnergyMWh := batteryPowerMW * battery.DurationHours

	esaAnnualImport := esaCapacity * hoursPerYear * 0.5
	residualAfterSolarESA := math.Max(annualEnergy-solarAnnualGen-esaAnnualImport, 0.0)
	gasAnnualGeneration := math.Min(gasCapacityMW*hoursPerYear, residualAfterSolarESA)
	batteryAnnualDischarge := math.Max(annualEnergy-solarAnnualGen-esaAnnualImport-gasAnnualGeneration, 0.0)

	totalFirmAccredited := esaELCC + solarELCC + batteryELCC + gasELCC
	coverageRatio := totalFirmAccredited / math.Max(grossFirmReq, epsilon)

	estimatedCurtailmentMWh := math.Max(annualEnergy-solarAnnualGen-esaAnnualImport-gasAnnualGeneration, 0.0) * 0.05
	weightedCurtailCost := weightedCurtailmentCost(estimatedCurtailmentMWh, m.Curtailment.Tiers)
	annualRevenueLost := estimatedCurtailmentMWh * weightedCurtailCost

	return resourceMix{
		grossFirmReq: grossFirmReq, annualEnergy: annualEnergy,
		esaCapacity: esaCapacity, esaELCC: esaELCC,
		solarMW: solarMW, solarELCC: solarELCC, solarAnnualGen: solarAnnualGen,
		gasCapacityMW: gasCapacityMW, gasELCC: gasELCC,
		batteryPowerMW: batteryPowerMW, batteryEnergyMWh: batteryEnergyMWh, batteryELCC: batteryELCC,
		esaAnnualImport: esaAnnualImport, gasAnnualGeneration: gasAnnualGeneration,
		batteryAnnualDischarge: batteryAnnualDischarge,
		totalFirmAccredited:    totalFirmAccredited, coverageRatio: coverageRatio,
		estimatedCurtailmentMWh: estimatedCurtailmentMWh,
		weightedCurtailCost:     weightedCurtailCost,
		annualRevenueLost:       annualRevenueLost,
	}
}

// weightedCurtailmentCost greedily fills non-tier1 curtailment tiers in
// ascending revenue-loss-rate order, with any overflow beyond all tier
// capacity billed at the highest-rate tier.
func weightedCurtailmentCost(totalMWh float64, tiers []CurtailmentTier) float64 {
	if totalMWh <= 0 {
		return 0
	}
	ordered := make([]CurtailmentTier, 0, len(tiers))
	for _, t := range tiers {
		if t.Name != "tier1" {
			ordered = append(ordered, t)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].RevenueLossPerMWh < ordered[j].RevenueLossPerMWh
	})

	remaining := totalMWh
	totalCost := 0.0
	for _, tier := range ordered {
		tierCap := tier.MW * tier.MaxEventHours * tier.MaxEvents
		consumed := math.Min(remaining, tierCap)
		totalCost += consumed * tier.RevenueLossPerMWh
		remaining -= consumed
		if remaining <= 0 {
			break
		}
	}
	if remaining > 0 && len(ordered) > 0 {
		totalCost += remaining * ordered[len(ordered)-1].RevenueLossPerMWh
	}
	return totalCost / totalMWh
}

// capitalCosts is the static capital-stack rollup (land through BYOC
// equipment), independent of the lease rate.
type capitalCosts struct {
	landCost          float64
	totalPrecon       float64
	totalPowerInfra   float64
	poweredLandCost   float64
	totalDCCapex      float64
	solarCapex        float64
	windCapex         float64
	batteryCapex      float64
	gasCapex          float64
	totalBYOCCapex    float64
	totalProjectCost  float64
}

func computeCapitalCosts(m Model, mix resourceMix) capitalCosts {
	land := m.SiteLand
	pre := m.Preconstruction
	pwr := m.PowerInfrastructure
	dc := m.DataCenter
	rc := m.ResourceCosts

	landCost := land.LandParcelSizeAcres * land.LandCostPerAcreUSD

	preSubtotal := pre.PermittingRegulatoryUSD + pre.EnvironmentalStudiesUSD + pre.GeotechEngineeringUSD +
		pre.InterconnectionStudiesUSD + pre.LegalFeesUSD + pre.TitleInsuranceUSD + pre.DevelopmentMgmtUSD +
		pre.SitePreparationUSD + pre.UtilityCoordinationUSD + pre.FinancingFeesUSD
	preCont := preSubtotal * normalizePct(pre.ContingencyPct)
	totalPrecon := preSubtotal + preCont

	substationCost := pwr.SubstationCapacityMVA * pwr.SubstationCostPerMVAUSD
	transmissionCost := pwr.TransmissionDistanceMiles * pwr.TransmissionCostPerMileUSD
	powerSubtotal := substationCost + transmissionCost + pwr.NetworkUpgradesUSD + pwr.DistributionInfraUSD
	powerCont := powerSubtotal * normalizePct(pwr.ContingencyPct)
	totalPowerInfra := powerSubtotal + powerCont
	poweredLandCost := landCost + totalPrecon + totalPowerInfra

	dcConstruction := dc.TotalITCapacityMW * dc.ConstructionCostPerKWUSD * 1000.0
	dcSubtotal := dcConstruction + dc.FFEUSD + dc.OwnersCostsUSD
	dcCont := dcSubtotal * normalizePct(dc.ContingencyPct)
	totalDCCapex := dcSubtotal + dcCont

	solarCapex := mix.solarMW * rc.Solar.CapitalCostPerKWUSD * 1000.0
	windCapex := 0.0
	batteryCapex := (mix.batteryPowerMW*rc.Battery.PowerCostPerKWUSD +
		mix.batteryEnergyMWh*rc.Battery.EnergyCostPerKWhUSD) * 1000.0
	gasCapex := mix.gasCapacityMW * rc.NaturalGas.CapitalCostPerKWUSD * 1000.0
	totalBYOCCapex := solarCapex + windCapex + batteryCapex + gasCapex

	totalProjectCost := poweredLandCost + totalDCCapex + totalBYOCCapex

	return capitalCosts{
		landCost: landCost, totalPrecon: totalPrecon, totalPowerInfra: totalPowerInfra,
		poweredLandCost: poweredLandCost, totalDCCapex: totalDCCapex,
		solarCapex: solarCapex, windCapex: windCapex, batteryCapex: batteryCapex, gasCapex: gasCapex,
		totalBYOCCapex: totalBYOCCapex, totalProjectCost: totalProjectCost,
	}
}

// cashflowBuilder closes over every model input the per-year projection
// needs, so the lease-rate calibration loop can re-project cheaply for any
// candidate rate.
type cashflowBuilder struct {
	m            Model
	mix          resourceMix
	cap          capitalCosts
	periodYears  int
	discount     float64
	inflation    float64
	stabilizedOcc float64
	absorption   float64
	contractEsc  float64
	opexEsc      float64
	fuelEsc      float64
	esaEsc       float64
}

func newCashflowBuilder(m Model, mix resourceMix, cap capitalCosts) cashflowBuilder {
	ana := m.Analysis
	return cashflowBuilder{
		m: m, mix: mix, cap: cap,
		periodYears:   ana.AnalysisPeriodYears,
		discount:      normalizePct(ana.DiscountRatePct),
		inflation:     normalizePct(ana.GeneralInflationRatePct),
		stabilizedOcc: normalizePct(m.Revenue.StabilizedOccupancyPct),
		absorption:    m.Revenue.AbsorptionPeriodYears,
		contractEsc:   normalizePct(m.Revenue.ContractEscalationRatePct),
		opexEsc:       normalizePct(m.Opex.OpexEscalationRatePct),
		fuelEsc:       normalizePct(m.ResourceCosts.NaturalGas.FuelPriceEscalationPct),
		esaEsc:        normalizePct(m.ResourceCosts.ESAGrid.EnergyEscalationPct),
	}
}

// build projects period years of cash flow at a given base lease rate
// ($/MW-month), returning the per-year rows, the flat cashflow series
// (index 0 = -totalProjectCost), the payback year if reached, and the
// count of years with positive EBITDA.
func (b cashflowBuilder) build(baseRatePerMWMonth float64) ([]CashflowYear, []float64, *float64, int) {
	rows := make([]CashflowYear, 0, b.periodYears)
	series := make([]float64, 0, b.periodYears+1)
	series = append(series, -b.cap.totalProjectCost)
	cumulative := -b.cap.totalProjectCost
	var payback *float64
	positiveYears := 0

	rc := b.m.ResourceCosts
	solar := rc.Solar
	battery := rc.Battery
	gas := rc.NaturalGas
	esa := rc.ESAGrid
	opx := b.m.Opex

	for year := 1; year <= b.periodYears; year++ {
		occ := b.stabilizedOcc
		if b.absorption > 0 {
			occ = math.Min(float64(year)/b.absorption, 1.0) * b.stabilizedOcc
		}
		occupiedMW := b.m.Revenue.LeasableITCapacityMW * occ
		leaseRateY := baseRatePerMWMonth * math.Pow(1+b.contractEsc, float64(year-1))
		grossRevenue := occupiedMW * leaseRateY * 12.0

		inflationY := math.Pow(1+b.inflation, float64(year-1))
		solarOM := b.mix.solarMW * solar.FixedOMPerKWYearUSD * 1000.0 * inflationY
		batteryOM := b.mix.batteryPowerMW * battery.FixedOMPerKWYearUSD * 1000.0 * inflationY

		fuelPriceY := gas.FuelCostUSDPerMMBtu * math.Pow(1+b.fuelEsc, float64(year-1))
		gasCost := b.mix.gasCapacityMW*gas.FixedOMPerKWYearUSD*1000.0*inflationY +
			b.mix.gasAnnualGeneration*(gas.HeatRateMMBtuPerMWh*fuelPriceY+gas.VariableOMPerMWhUSD)

		esaEnergy := b.mix.esaCapacity * (occ / math.Max(b.stabilizedOcc, epsilon)) * hoursPerYear * 0.5 *
			esa.EnergyRateUSDPerMWh * math.Pow(1+b.esaEsc, float64(year-1))
		esaDemand := b.mix.esaCapacity * esa.DemandChargeUSDPerMWMonth * 12.0
		totalPowerCosts := solarOM + batteryOM + gasCost + esaEnergy + esaDemand

		curtailLoss := b.mix.annualRevenueLost * (occ / math.Max(b.stabilizedOcc, epsilon))

		facilityOps := opx.BaseFacilityOpsUSDPerMWYear * occupiedMW * math.Pow(1+b.opexEsc, float64(year-1))
		propertyTaxes := b.cap.totalProjectCost * normalizePct(opx.PropertyTaxRatePct)
		insurance := occupiedMW * opx.InsuranceUSDPerMWYear * math.Pow(1+b.opexEsc, float64(year-1))
		assetFee := grossRevenue * normalizePct(opx.AssetMgmtFeePct)
		otherGA := opx.OtherGAUSDPerYear * inflationY
		totalOpex := facilityOps + propertyTaxes + insurance + assetFee + otherGA

		ebitda := grossRevenue - totalPowerCosts - curtailLoss - totalOpex
		depreciation := b.cap.totalProjectCost / math.Max(float64(b.periodYears), 1)
		ebit := ebitda - depreciation

		yearFCF := ebitda
		if yearFCF > 0 {
			positiveYears++
		}
		prior := cumulative
		cumulative += yearFCF
		series = append(series, yearFCF)

		if payback == nil && cumulative >= 0 {
			step := math.Max(cumulative-prior, epsilon)
			p := float64(year-1) + math.Max(0.0, math.Min(1.0, -prior/step))
			payback = &p
		}

		rows = append(rows, CashflowYear{
			Year: year, OccupancyRate: round(occ, 6),
			GrossRevenueUSD: round(grossRevenue, 2), TotalPowerCostsUSD: round(totalPowerCosts, 2),
			CurtailmentLossUSD: round(curtailLoss, 2), TotalOpexUSD: round(totalOpex, 2),
			EBITDAUSD: round(ebitda, 2), DepreciationUSD: round(depreciation, 2), EBITUSD: round(ebit, 2),
			NetFreeCashFlowUSD: round(yearFCF, 2), CumulativeCashFlowUSD: round(cumulative, 2),
		})
	}

	return rows, series, payback, positiveYears
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
