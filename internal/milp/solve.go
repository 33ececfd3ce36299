package milp

import (
	"log"
	"math"
	"os/exec"
	"time"
)

// solverTimeLimit is the wall-clock budget of the internal simplex solve.
const solverTimeLimit = 120 * time.Second

// DispatchRow is one representative hour of the solved schedule.
type DispatchRow struct {
	Hour      int     `json:"hour"`
	SolarMW   float64 `json:"solar_mw"`
	BatteryMW float64 `json:"battery_mw"`
	GasMW     float64 `json:"gas_mw"`
	LoadMW    float64 `json:"load_mw"`
	SOC       float64 `json:"soc"`
}

// DispatchResult is the full outcome of sizing and dispatching one plant.
type DispatchResult struct {
	SolverStatus     string        `json:"solver_status"`
	ObjectiveValue   float64       `json:"objective_value"`
	SolarCapacityMW  float64       `json:"solar_capacity_mw"`
	BatteryPowerMW   float64       `json:"battery_power_mw"`
	BatteryEnergyMWh float64       `json:"battery_energy_mwh"`
	GasGenTotalMWh   float64       `json:"gas_gen_total_mwh"`
	SolarGenTotalMWh float64       `json:"solar_gen_total_mwh"`
	Dispatch         []DispatchRow `json:"hourly_dispatch"`
}

// Run builds the model for p and solves it with the internal simplex engine
// under a 120s wall-clock budget. trySubprocessSolver only detects a HiGHS
// or CBC binary; no external solver is ever run. A non-optimal result is
// returned rather than treated as an error, since callers report
// solver_status as advisory.
func Run(p BuildParams) DispatchResult {
	model := Build(p)

	result, ok := trySubprocessSolver(model)
	if !ok {
		start := time.Now()
		result = Solve(model, solverTimeLimit)
		log.Printf("[milp] internal simplex solved in %s, status=%s", time.Since(start), result.Status)
	}

	return extractDispatch(p, result)
}

// trySubprocessSolver looks for a HiGHS or CBC command-line binary and logs
// when one is found. It never hands the model to that binary and always
// returns false, so the caller always uses the internal engine.
func trySubprocessSolver(model Model) (Result, bool) {
	for _, bin := range []string{"highs", "cbc"} {
		if _, err := exec.LookPath(bin); err == nil {
			log.Printf("[milp] external solver %q found but MPS handoff is not wired; using internal engine", bin)
			return Result{}, false
		}
	}
	return Result{}, false
}

func extractDispatch(p BuildParams, r Result) DispatchResult {
	x := r.X

	dispatch := make([]DispatchRow, HoursPerRepr)
	var gasTotal, solarTotal float64
	for t := 0; t < HoursPerRepr; t++ {
		solarMW := x[idxSolarGen(t)] * p.InverterEfficiency
		sqrtRTE := math.Sqrt(p.BatteryRTE)
		batteryMW := x[idxBattDischarge(t)]*sqrtRTE - x[idxBattCharge(t)]/sqrtRTE
		gasMW := x[idxGasGen(t)]

		dispatch[t] = DispatchRow{
			Hour:      t,
			SolarMW:   round4(solarMW),
			BatteryMW: round4(batteryMW),
			GasMW:     round4(gasMW),
			LoadMW:    p.LoadMW,
			SOC:       round4(x[idxSOC(t)]),
		}
		gasTotal += gasMW * DaysPerMonth
		solarTotal += solarMW * DaysPerMonth
	}

	return DispatchResult{
		SolverStatus:     string(r.Status),
		ObjectiveValue:   r.Objective,
		SolarCapacityMW:  round4(x[idxSolarCap]),
		BatteryPowerMW:   round4(x[idxBattPower]),
		BatteryEnergyMWh: round4(x[idxBattEnergy]),
		GasGenTotalMWh:   round4(gasTotal),
		SolarGenTotalMWh: round4(solarTotal),
		Dispatch:         dispatch,
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
