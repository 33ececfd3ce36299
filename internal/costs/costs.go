// Package costs implements the annualization and LCOE primitives shared by
// the MILP optimizer and the gas-only reference calculation.
package costs

import "math"

// CRF computes the capital recovery factor for a financing rate and term in
// years: the annual payment that amortizes a unit lump sum over n years at
// rate r. CRF(0, n) is defined as 1/n.
func CRF(rate float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if rate == 0 {
		return 1.0 / float64(years)
	}
	growth := math.Pow(1+rate, float64(years))
	return (rate * growth) / (growth - 1)
}

// GasVariableCost returns the variable cost of gas generation in $/MWh given
// a heat rate in BTU/kWh and a gas price in $/MMBtu.
func GasVariableCost(heatRateBTUPerKWh, gasPricePerMMBtu float64) float64 {
	return heatRateBTUPerKWh * gasPricePerMMBtu / 1000.0
}

// GasOnlyLCOEParams bundles the inputs to GasOnlyLCOE.
type GasOnlyLCOEParams struct {
	HeatRateBTUPerKWh float64
	GasPricePerMMBtu  float64
	FixedOMPerKWYear  float64
	CapacityFactor    float64
	CapexPerKW        float64 // 0 for an existing plant
	WACC              float64
	LifeYears         int
}

// GasOnlyLCOE computes the reference gas-only levelized cost of energy in
// $/MWh: fuel cost plus fixed O&M and (if any) annualized capex spread over
// full-load-equivalent hours.
func GasOnlyLCOE(p GasOnlyLCOEParams) float64 {
	lcoe := GasVariableCost(p.HeatRateBTUPerKWh, p.GasPricePerMMBtu)
	if p.CapacityFactor <= 0 {
		return lcoe
	}
	fullLoadHours := p.CapacityFactor * 8760
	lcoe += (p.FixedOMPerKWYear / fullLoadHours) * 1000.0
	if p.CapexPerKW > 0 {
		crf := CRF(p.WACC, p.LifeYears)
		lcoe += (p.CapexPerKW * crf / fullLoadHours) * 1000.0
	}
	return lcoe
}

// AnnualCosts is the per-component annualized cost breakdown, in $/year.
type AnnualCosts struct {
	SolarCost           float64
	BatteryCost         float64
	GasCost             float64
	ExcessSolarRevenue  float64
	Total               float64
}

// AnnualCostsParams bundles the sized capacities and cost scenario needed to
// roll up annual costs for a solved portfolio.
type AnnualCostsParams struct {
	SolarMW           float64
	BattPowerMW       float64
	BattEnergyMWh     float64
	GasGenMWh         float64
	GasVariableCost   float64
	SolarCapexPerKW   float64
	SolarOMPerKWYear  float64
	SolarLifeYears    int
	BattEnergyCapexPerKWh float64
	BattPowerCapexPerKW   float64
	BattOMPerKWYear       float64
	BattLifeYears         int
	WACC                  float64
}

// ComputeAnnualCosts rolls up the annualized cost of each sized component
// plus gas variable cost for the year.
func ComputeAnnualCosts(p AnnualCostsParams) AnnualCosts {
	solarCRF := CRF(p.WACC, p.SolarLifeYears)
	battCRF := CRF(p.WACC, p.BattLifeYears)

	solarCapexAnnual := p.SolarCapexPerKW * p.SolarMW * 1000.0 * solarCRF
	solarOMAnnual := p.SolarOMPerKWYear * p.SolarMW * 1000.0
	solarCost := solarCapexAnnual + solarOMAnnual

	battEnergyCapexAnnual := p.BattEnergyCapexPerKWh * p.BattEnergyMWh * 1000.0 * battCRF
	battPowerCapexAnnual := p.BattPowerCapexPerKW * p.BattPowerMW * 1000.0 * battCRF
	battOMAnnual := p.BattOMPerKWYear * p.BattPowerMW * 1000.0
	batteryCost := battEnergyCapexAnnual + battPowerCapexAnnual + battOMAnnual

	gasCost := p.GasGenMWh * p.GasVariableCost

	return AnnualCosts{
		SolarCost:   solarCost,
		BatteryCost: batteryCost,
		GasCost:     gasCost,
		Total:       solarCost + batteryCost + gasCost,
	}
}

// EmissionsFactor returns the blended emissions intensity in kg CO2 per MWh
// of total load, given the plant heat rate and annual gas/total generation.
func EmissionsFactor(heatRateBTUPerKWh, gasGenMWh, totalLoadMWh float64) float64 {
	if totalLoadMWh <= 0 {
		return 0
	}
	const co2KgPerMMBtu = 53.1
	gasEmissionIntensity := heatRateBTUPerKWh * co2KgPerMMBtu / 1000.0
	totalEmissionsKg := gasEmissionIntensity * gasGenMWh
	return totalEmissionsKg / totalLoadMWh
}
