// Package solarprofile synthesizes and compresses solar capacity-factor
// profiles used as the MILP's per-timestep solar resource bound.
package solarprofile

import (
	"fmt"
	"math"
)

// HoursPerRepr is the number of representative timesteps in a year: 12
// months times 24 hours.
const HoursPerRepr = 288

// daysInMonth is the non-leap calendar used for 8760->288 compression.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Generate produces a 288-entry synthetic capacity-factor profile for a
// given latitude (degrees, positive = northern hemisphere), using a
// closed-form declination/day-length/cosine-shape model.
func Generate(latitude float64) []float64 {
	profile := make([]float64, 0, HoursPerRepr)
	absLat := math.Abs(latitude)

	for month := 0; month < 12; month++ {
		phase := (2 * math.Pi / 12) * (float64(month) - 2.5)

		dayLength := 12.0 + 2.5*math.Sin(phase)
		latFactor := absLat / 90.0
		dayLength += 2.0 * latFactor * math.Sin(phase)
		dayLength = clamp(dayLength, 8.0, 16.0)

		sunrise := 12.0 - dayLength/2.0
		sunset := 12.0 + dayLength/2.0

		peakCF := 0.22 + 0.08*math.Sin(phase)
		peakCF += 0.05 * (1.0 - absLat/60.0)
		peakCF = clamp(peakCF, 0.10, 0.40)

		for hour := 0; hour < 24; hour++ {
			h := float64(hour)
			var cf float64
			if h >= sunrise && h <= sunset {
				angle := math.Pi * (h - 12.0) / (dayLength / 2.0)
				cf = peakCF * math.Max(0.0, math.Cos(angle))
			}
			profile = append(profile, round5(cf))
		}
	}
	return profile
}

// CompressTo288 averages an 8760-hour profile into 288 representative
// hours by averaging each month's h-th hour across all days of that month.
func CompressTo288(profile8760 []float64) ([]float64, error) {
	if len(profile8760) != 8760 {
		return nil, fmt.Errorf("solar_profile: expected 8760 entries, got %d", len(profile8760))
	}

	profile288 := make([]float64, 0, HoursPerRepr)
	idx := 0
	for _, ndays := range daysInMonth {
		monthHours := ndays * 24
		monthData := profile8760[idx : idx+monthHours]
		idx += monthHours

		for h := 0; h < 24; h++ {
			sum := 0.0
			for d := 0; d < ndays; d++ {
				sum += monthData[d*24+h]
			}
			profile288 = append(profile288, round5(sum/float64(ndays)))
		}
	}
	return profile288, nil
}

// RescaleToHint rescales a 288-entry profile so its mean matches the given
// site-average capacity-factor hint, clamped to [0.05, 0.45] after percent
// normalization, and clamps every resulting sample to [0,1].
func RescaleToHint(profile []float64, hint float64) []float64 {
	if hint <= 0 {
		return profile
	}
	normalized := hint
	if hint > 1 {
		normalized = hint / 100.0
	}
	normalized = clamp(normalized, 0.05, 0.45)

	avg := mean(profile)
	if avg <= 0 {
		return profile
	}
	scale := normalized / avg
	out := make([]float64, len(profile))
	for i, v := range profile {
		out[i] = clamp(round5(v*scale), 0.0, 1.0)
	}
	return out
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round5(v float64) float64 {
	const scale = 1e5
	return math.Round(v*scale) / scale
}

