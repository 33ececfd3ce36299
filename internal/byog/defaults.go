package byog

// DefaultModel is the built-in configuration tree. Caller byoc_inputs
// overrides are deep-merged over a JSON projection of this value: scalars
// replace, nested objects recurse.
var DefaultModel = Model{
	SiteLand: SiteLand{
		LandParcelSizeAcres: 100.0,
		LandCostPerAcreUSD:  25_000.0,
	},
	Preconstruction: Preconstruction{
		PermittingRegulatoryUSD:   500_000.0,
		EnvironmentalStudiesUSD:   300_000.0,
		GeotechEngineeringUSD:     200_000.0,
		InterconnectionStudiesUSD: 1_000_000.0,
		LegalFeesUSD:              400_000.0,
		TitleInsuranceUSD:         150_000.0,
		DevelopmentMgmtUSD:        500_000.0,
		SitePreparationUSD:        2_000_000.0,
		UtilityCoordinationUSD:    300_000.0,
		FinancingFeesUSD:          250_000.0,
		ContingencyPct:            7.5,
	},
	PowerInfrastructure: PowerInfrastructure{
		SubstationCapacityMVA:      150.0,
		SubstationCostPerMVAUSD:    40_000.0,
		TransmissionDistanceMiles:  2.0,
		TransmissionCostPerMileUSD: 2_000_000.0,
		NetworkUpgradesUSD:         5_000_000.0,
		DistributionInfraUSD:       3_000_000.0,
		ContingencyPct:             10.0,
	},
	DataCenter: DataCenter{
		TotalITCapacityMW:        100.0,
		ConstructionCostPerKWUSD: 8_000.0,
		FFEUSD:                   2_000_000.0,
		OwnersCostsUSD:           5_000_000.0,
		ContingencyPct:           10.0,
	},
	LoadProfile: LoadProfile{
		PeakITLoadMW:       90.0,
		MinOperatingLoadMW: 30.0,
		LoadFactor:         0.85,
	},
	Curtailment: Curtailment{
		Tiers: []CurtailmentTier{
			{Name: "tier4", MW: 20.0, MaxEventHours: 8.0, MaxEvents: 50.0, RevenueLossPerMWh: 50.0},
			{Name: "tier3", MW: 20.0, MaxEventHours: 4.0, MaxEvents: 30.0, RevenueLossPerMWh: 120.0},
			{Name: "tier2", MW: 15.0, MaxEventHours: 2.0, MaxEvents: 15.0, RevenueLossPerMWh: 250.0},
			{Name: "tier1", MW: 35.0, MaxEventHours: 0.0, MaxEvents: 0.0, RevenueLossPerMWh: 0.0},
		},
	},
	Firmness: Firmness{
		BaseFirmGenerationRequirementPct: 85.0,
		PlanningReserveMarginPct:         15.0,
	},
	ResourceCosts: ResourceCosts{
		Solar: SolarCosts{
			CapacityFactorPct:        25.0,
			CapitalCostPerKWUSD:      1_200.0,
			FixedOMPerKWYearUSD:      15.0,
			UsefulLifeYears:          30,
			DegradationPct:           0.5,
			LandRequirementAcresPerMW: 7.0,
			ELCC:                     0.30,
		},
		Wind: WindCosts{
			CapacityFactorPct:   35.0,
			CapitalCostPerKWUSD: 1_400.0,
			FixedOMPerKWYearUSD: 25.0,
			UsefulLifeYears:     25,
			ELCC:                0.40,
		},
		Battery: BatteryCosts{
			DurationHours:          4.0,
			PowerCostPerKWUSD:      250.0,
			EnergyCostPerKWhUSD:    200.0,
			FixedOMPerKWYearUSD:    10.0,
			VariableOMPerMWhUSD:    3.0,
			RoundTripEfficiencyPct: 87.0,
			UsefulLifeYears:        15,
			ELCC:                   0.90,
		},
		NaturalGas: NaturalGasCosts{
			CapitalCostPerKWUSD:    800.0,
			FixedOMPerKWYearUSD:    12.0,
			VariableOMPerMWhUSD:    5.0,
			HeatRateMMBtuPerMWh:    9.5,
			FuelCostUSDPerMMBtu:    4.0,
			FuelPriceEscalationPct: 2.5,
			UsefulLifeYears:        30,
			ELCC:                   0.92,
		},
		ESAGrid: ESAGridCosts{
			Available:                 true,
			MaxCapacityMW:             50.0,
			EnergyRateUSDPerMWh:       65.0,
			EnergyEscalationPct:       2.0,
			DemandChargeUSDPerMWMonth: 15_000.0,
			TransmissionImportLimitMW: 50.0,
			ELCC:                      1.0,
		},
	},
	Revenue: Revenue{
		LeasableITCapacityMW:                90.0,
		RevenueModelType:                    "wholesale",
		BaseLeaseRateWholesaleUSDPerMWMonth: 120_000.0,
		BaseLeaseRateColoUSDPerKWMonth:      150.0,
		ContractEscalationRatePct:           2.5,
		AbsorptionPeriodYears:               2.0,
		StabilizedOccupancyPct:              95.0,
		DynamicLeasePricingEnabled:          true,
		TargetIRRBufferPct:                  1.0,
		MaxLeaseRateUSDPerMWMonth:           600_000.0,
	},
	Opex: Opex{
		BaseFacilityOpsUSDPerMWYear: 50_000.0,
		PropertyTaxRatePct:          1.0,
		InsuranceUSDPerMWYear:       8_000.0,
		AssetMgmtFeePct:             2.0,
		OtherGAUSDPerYear:           500_000.0,
		OpexEscalationRatePct:       2.5,
	},
	Analysis: Analysis{
		RequiredEquityReturnPct: 12.0,
		DiscountRatePct:         10.0,
		AnalysisPeriodYears:     25,
		GeneralInflationRatePct: 2.5,
		MaxGasBackupPct:         100.0,
	},
}
