// Package scenarios holds the named cost-assumption presets used to size
// and price a hybrid retrofit: solar/battery capex and O&M, financing rate,
// asset lifetimes, and gas price, each labeled for a plausible investment
// outlook.
package scenarios

import "fmt"

// Scenario is one named bundle of cost and financing assumptions feeding
// both the MILP objective and the annual LCOE rollup.
type Scenario struct {
	Name                       string  `json:"name"`
	Description                string  `json:"description"`
	SolarCapexPerKW            float64 `json:"solar_capex_per_kw"`
	BatteryEnergyCapexPerKWh   float64 `json:"battery_energy_capex_per_kwh"`
	BatteryPowerCapexPerKW     float64 `json:"battery_power_capex_per_kw"`
	SolarOMPerKWYear           float64 `json:"solar_om_per_kw_year"`
	BatteryOMPerKWYear         float64 `json:"battery_om_per_kw_year"`
	InverterEfficiency         float64 `json:"inverter_efficiency"`
	BatteryRTE                 float64 `json:"battery_rte"`
	WACC                       float64 `json:"wacc"`
	SolarLifeYears             int     `json:"solar_life_years"`
	BatteryLifeYears           int     `json:"battery_life_years"`
	GasPricePerMMBtu           float64 `json:"gas_price_per_mmbtu"`
}

// catalog is the fixed set of built-in scenarios. Callers never mutate
// these in place; Lookup returns a copy.
var catalog = map[string]Scenario{
	"base": {
		Name:                     "base",
		Description:              "Base case: mid-range 2028 cost assumptions",
		SolarCapexPerKW:          950,
		BatteryEnergyCapexPerKWh: 250,
		BatteryPowerCapexPerKW:   150,
		SolarOMPerKWYear:         12.0,
		BatteryOMPerKWYear:       8.0,
		InverterEfficiency:       0.97,
		BatteryRTE:               0.87,
		WACC:                     0.06,
		SolarLifeYears:           30,
		BatteryLifeYears:         20,
		GasPricePerMMBtu:         3.50,
	},
	"low": {
		Name:                     "low",
		Description:              "Optimistic: aggressive cost declines for solar+storage",
		SolarCapexPerKW:          750,
		BatteryEnergyCapexPerKWh: 180,
		BatteryPowerCapexPerKW:   120,
		SolarOMPerKWYear:         10.0,
		BatteryOMPerKWYear:       6.0,
		InverterEfficiency:       0.97,
		BatteryRTE:               0.90,
		WACC:                     0.05,
		SolarLifeYears:           30,
		BatteryLifeYears:         20,
		GasPricePerMMBtu:         3.50,
	},
	"high": {
		Name:                     "high",
		Description:              "Conservative: higher costs and gas price sensitivity",
		SolarCapexPerKW:          1200,
		BatteryEnergyCapexPerKWh: 320,
		BatteryPowerCapexPerKW:   200,
		SolarOMPerKWYear:         15.0,
		BatteryOMPerKWYear:       10.0,
		InverterEfficiency:       0.96,
		BatteryRTE:               0.85,
		WACC:                     0.08,
		SolarLifeYears:           30,
		BatteryLifeYears:         20,
		GasPricePerMMBtu:         5.00,
	},
	"high_gas": {
		Name:                     "high_gas",
		Description:              "Base renewables costs with elevated natural gas prices",
		SolarCapexPerKW:          950,
		BatteryEnergyCapexPerKWh: 250,
		BatteryPowerCapexPerKW:   150,
		SolarOMPerKWYear:         12.0,
		BatteryOMPerKWYear:       8.0,
		InverterEfficiency:       0.97,
		BatteryRTE:               0.87,
		WACC:                     0.06,
		SolarLifeYears:           30,
		BatteryLifeYears:         20,
		GasPricePerMMBtu:         6.00,
	},
}

// Lookup returns the named scenario. The bool is false for an unknown name.
func Lookup(name string) (Scenario, bool) {
	s, ok := catalog[name]
	return s, ok
}

// MustLookup is Lookup but panics on an unknown name; reserved for callers
// (tests, CLI defaults) that pass a name known at compile time.
func MustLookup(name string) Scenario {
	s, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("scenarios: unknown scenario %q", name))
	}
	return s
}

// Names returns the catalog's scenario names in a fixed, stable order.
func Names() []string {
	return []string{"base", "low", "high", "high_gas"}
}

// All returns every built-in scenario in Names order.
func All() []Scenario {
	names := Names()
	out := make([]Scenario, len(names))
	for i, n := range names {
		out[i] = catalog[n]
	}
	return out
}
