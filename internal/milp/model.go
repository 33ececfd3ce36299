package milp

import "math"

// HoursPerRepr is the length of the representative-year time horizon: 12
// months times 24 representative hours each.
const HoursPerRepr = 288

// DaysPerMonth scales a representative-hour quantity up to an annual total:
// each of the 288 steps stands in for 365/12 real days.
const DaysPerMonth = 365.0 / 12.0

// BuildParams holds everything needed to assemble the joint sizing +
// dispatch linear program for one plant/scenario combination.
type BuildParams struct {
	LoadMW          float64
	Profile         []float64 // length HoursPerRepr, solar capacity factor per hour
	GasCapacityMW   float64
	MaxGasBackupPct float64
	MaxSolarMW      float64 // 0 disables the bound
	ConflictHours   map[int]bool

	InverterEfficiency float64
	BatteryRTE         float64

	SolarAnnualCostPerMW       float64
	BatteryEnergyAnnualCostPerMWh float64
	BatteryPowerAnnualCostPerMW   float64
	GasVariableCostPerMWh         float64
}

// Variable column layout, fixed once NumVars is known:
//
//	0                      solar_cap
//	1                      batt_power
//	2                      batt_energy
//	3 + 0*288 + t          solar_gen[t]
//	3 + 1*288 + t          batt_charge[t]
//	3 + 2*288 + t          batt_discharge[t]
//	3 + 3*288 + t          gas_gen[t]
//	3 + 4*288 + t          soc[t]
const (
	idxSolarCap  = 0
	idxBattPower = 1
	idxBattEnergy = 2
	varBase      = 3
)

func idxSolarGen(t int) int      { return varBase + 0*HoursPerRepr + t }
func idxBattCharge(t int) int    { return varBase + 1*HoursPerRepr + t }
func idxBattDischarge(t int) int { return varBase + 2*HoursPerRepr + t }
func idxGasGen(t int) int        { return varBase + 3*HoursPerRepr + t }
func idxSOC(t int) int           { return varBase + 4*HoursPerRepr + t }

// Build assembles the Model for the joint solar/battery sizing and hourly
// dispatch problem described by p.
func Build(p BuildParams) Model {
	numVars := varBase + 5*HoursPerRepr

	varNames := make([]string, numVars)
	varNames[idxSolarCap] = "solar_cap"
	varNames[idxBattPower] = "batt_power"
	varNames[idxBattEnergy] = "batt_energy"
	for t := 0; t < HoursPerRepr; t++ {
		varNames[idxSolarGen(t)] = "solar_gen"
		varNames[idxBattCharge(t)] = "batt_charge"
		varNames[idxBattDischarge(t)] = "batt_discharge"
		varNames[idxGasGen(t)] = "gas_gen"
		varNames[idxSOC(t)] = "soc"
	}

	objective := make([]float64, numVars)
	objective[idxSolarCap] = p.SolarAnnualCostPerMW
	objective[idxBattEnergy] = p.BatteryEnergyAnnualCostPerMWh
	objective[idxBattPower] = p.BatteryPowerAnnualCostPerMW
	for t := 0; t < HoursPerRepr; t++ {
		objective[idxGasGen(t)] = p.GasVariableCostPerMWh * DaysPerMonth
	}

	sqrtRTE := math.Sqrt(p.BatteryRTE)

	var constraints []Constraint

	for t := 0; t < HoursPerRepr; t++ {
		prev := t - 1
		if prev < 0 {
			prev = HoursPerRepr - 1
		}

		// (1) Energy balance: inv_eff*solar_gen + sqrt(rte)*discharge - charge/sqrt(rte) + gas >= load
		constraints = append(constraints, Constraint{
			Name: "balance",
			Terms: []Term{
				{idxSolarGen(t), p.InverterEfficiency},
				{idxBattDischarge(t), sqrtRTE},
				{idxBattCharge(t), -1.0 / sqrtRTE},
				{idxGasGen(t), 1.0},
			},
			Sense: GE,
			RHS:   p.LoadMW,
		})

		// (2) solar_gen[t] <= solar_cap * profile[t]
		constraints = append(constraints, Constraint{
			Name: "solar_bound",
			Terms: []Term{
				{idxSolarGen(t), 1.0},
				{idxSolarCap, -p.Profile[t]},
			},
			Sense: LE,
			RHS:   0,
		})

		// (3) batt_charge[t] <= batt_power
		constraints = append(constraints, Constraint{
			Name:  "charge_bound",
			Terms: []Term{{idxBattCharge(t), 1.0}, {idxBattPower, -1.0}},
			Sense: LE,
			RHS:   0,
		})

		// (4) batt_discharge[t] <= batt_power
		constraints = append(constraints, Constraint{
			Name:  "discharge_bound",
			Terms: []Term{{idxBattDischarge(t), 1.0}, {idxBattPower, -1.0}},
			Sense: LE,
			RHS:   0,
		})

		// (5) soc[t] - soc[prev] - charge[t] + discharge[t] = 0, cyclic
		constraints = append(constraints, Constraint{
			Name: "soc_continuity",
			Terms: []Term{
				{idxSOC(t), 1.0},
				{idxSOC(prev), -1.0},
				{idxBattCharge(t), -1.0},
				{idxBattDischarge(t), 1.0},
			},
			Sense: EQ,
			RHS:   0,
		})

		// (6) soc[t] <= batt_energy
		constraints = append(constraints, Constraint{
			Name:  "soc_bound",
			Terms: []Term{{idxSOC(t), 1.0}, {idxBattEnergy, -1.0}},
			Sense: LE,
			RHS:   0,
		})

		// (7) gas_gen[t] <= gas_capacity
		constraints = append(constraints, Constraint{
			Name:  "gas_capacity",
			Terms: []Term{{idxGasGen(t), 1.0}},
			Sense: LE,
			RHS:   p.GasCapacityMW,
		})

		// (8) conflict hours: gas_gen[t] <= 0 (nonnegativity makes this an equality)
		if p.ConflictHours[t] {
			constraints = append(constraints, Constraint{
				Name:  "conflict_hour",
				Terms: []Term{{idxGasGen(t), 1.0}},
				Sense: LE,
				RHS:   0,
			})
		}
	}

	// (9) batt_energy <= 6 * batt_power  (max 6-hour battery)
	constraints = append(constraints, Constraint{
		Name:  "battery_duration",
		Terms: []Term{{idxBattEnergy, 1.0}, {idxBattPower, -6.0}},
		Sense: LE,
		RHS:   0,
	})

	// (10) batt_power <= solar_cap
	constraints = append(constraints, Constraint{
		Name:  "battery_vs_solar",
		Terms: []Term{{idxBattPower, 1.0}, {idxSolarCap, -1.0}},
		Sense: LE,
		RHS:   0,
	})

	// (11) sum gas_gen[t] <= max_gas_backup_pct * load * 288
	gasTerms := make([]Term, HoursPerRepr)
	for t := 0; t < HoursPerRepr; t++ {
		gasTerms[t] = Term{idxGasGen(t), 1.0}
	}
	constraints = append(constraints, Constraint{
		Name:  "gas_backup_cap",
		Terms: gasTerms,
		Sense: LE,
		RHS:   p.MaxGasBackupPct * p.LoadMW * HoursPerRepr,
	})

	// (12) optional solar_cap <= max_solar_mw
	if p.MaxSolarMW > 0 {
		constraints = append(constraints, Constraint{
			Name:  "max_solar",
			Terms: []Term{{idxSolarCap, 1.0}},
			Sense: LE,
			RHS:   p.MaxSolarMW,
		})
	}

	return Model{
		NumVars:     numVars,
		VarNames:    varNames,
		Objective:   objective,
		Constraints: constraints,
	}
}
