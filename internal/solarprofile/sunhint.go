package solarprofile

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// EstimateCFHint samples the sun's path across a calendar year at a
// latitude/longitude and returns a plausible solar_cf_hint: the average of
// sin(altitude) over daylight hours, a proxy for annual capacity factor.
// This is a convenience for demo/CLI callers who want a quick hint without
// supplying their own CF estimate; it never substitutes for Generate, which
// is the specification's mandated closed-form synthesizer.
func EstimateCFHint(latitude, longitude float64, year int) float64 {
	var sum float64
	var n int

	for day := 0; day < 365; day++ {
		date := time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		sunTimes := suncalc.GetTimes(date, latitude, longitude)
		sunrise := sunTimes["sunrise"].Value
		sunset := sunTimes["sunset"].Value
		if sunset.Before(sunrise) {
			continue
		}

		for h := 0; h < 24; h++ {
			sample := time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, time.UTC)
			if sample.Before(sunrise) || sample.After(sunset) {
				continue
			}
			pos := suncalc.GetPosition(sample, latitude, longitude)
			factor := math.Sin(pos.Altitude)
			if factor < 0 {
				continue
			}
			sum += factor
			n++
		}
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
