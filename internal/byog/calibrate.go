package byog

import "math"

// calibrationResult is the chosen lease rate and the projection it produced.
type calibrationResult struct {
	rows          []CashflowYear
	series        []float64
	payback       *float64
	irr           float64
	positiveYears int
	appliedRate   float64
	applied       bool
}

// calibrateLeaseRate searches for the lowest lease rate (starting from
// baseRate) that clears both the IRR hurdle and the positive-cashflow-year
// threshold, widening the search bracket geometrically before bisecting.
// If no candidate improves on the base case, the base case is returned.
func calibrateLeaseRate(b cashflowBuilder, baseRate, targetIRR float64, baseIRR float64, basePositiveYears int) calibrationResult {
	periodYears := b.periodYears
	maxLease := b.m.Revenue.MaxLeaseRateUSDPerMWMonth
	requiredPositiveYears := int(math.Max(1, math.Floor(float64(periodYears)*0.6)))

	lo := baseRate
	hi := math.Max(baseRate*1.25, baseRate+10_000.0)

	bestRows, bestSeries, bestPayback := []CashflowYear(nil), []float64(nil), (*float64)(nil)
	bestIRR := baseIRR
	bestPositiveYears := basePositiveYears
	bestRate := baseRate

	for hi <= maxLease+epsilon {
		rowsH, seriesH, paybackH, posH := b.build(hi)
		irrH, ok := IRRBisection(seriesH)
		irrHVal := irrH
		if !ok || math.IsNaN(irrH) || math.IsInf(irrH, 0) {
			irrHVal = -0.99
		}

		if irrHVal > bestIRR {
			bestRows, bestSeries, bestPayback = rowsH, seriesH, paybackH
			bestIRR = irrHVal
			bestPositiveYears = posH
			bestRate = hi
		}

		if irrHVal >= targetIRR && posH >= requiredPositiveYears {
			break
		}
		hi *= 1.25
	}
	if hi > maxLease {
		hi = maxLease
	}

	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		rowsM, seriesM, paybackM, posM := b.build(mid)
		irrM, ok := IRRBisection(seriesM)
		irrMVal := irrM
		if !ok || math.IsNaN(irrM) || math.IsInf(irrM, 0) {
			irrMVal = -0.99
		}

		if irrMVal >= targetIRR && posM >= requiredPositiveYears {
			hi = mid
			bestRows, bestSeries, bestPayback = rowsM, seriesM, paybackM
			bestIRR = irrMVal
			bestPositiveYears = posM
			bestRate = mid
		} else {
			lo = mid
		}
	}

	if bestRate > baseRate+epsilon {
		return calibrationResult{
			rows: bestRows, series: bestSeries, payback: bestPayback,
			irr: bestIRR, positiveYears: bestPositiveYears,
			appliedRate: bestRate, applied: true,
		}
	}
	return calibrationResult{appliedRate: baseRate, applied: false}
}
