package bond

import "math"

const (
	// Z-spread search bracket in basis points.
	zSpreadBracketLo = 0.0
	zSpreadBracketHi = 500.0

	zSpreadMaxIter   = 100
	zSpreadTolerance = 1e-10

	// Discount rates are floored at 1bp so that a deeply negative curve
	// point cannot produce non-physical negative compounding.
	zSpreadRateFloor = 0.0001
)

// ZSpread solves for the constant spread, in basis points, that must be
// added uniformly across the interpolated benchmark curve for the
// discounted cash flows to equal the observed price.
//
// Parameters:
//
//	price: Observed market price.
//	curve: Benchmark curve, strictly increasing tenors.
//	flows: Cash flow schedule with explicit payment times; the final flow
//	       includes redemption.
//
// Bisection runs over [0, 500]bp. When the bracket contains no sign change
// (the price is unreachable at any spread in the bracket) the solver
// returns ErrZSpreadNoRoot; this is a recoverable, reported condition.
func ZSpread(price float64, curve Curve, flows []CashFlow) (float64, error) {
	if price <= 0 {
		return 0, ErrInvalidPrice
	}
	if err := curve.Validate(); err != nil {
		return 0, err
	}
	if len(flows) == 0 {
		return 0, ErrEmptyCashflows
	}

	// Pricing error at a candidate spread; strictly decreasing in spread.
	objective := func(spreadBP float64) float64 {
		pv := 0.0
		for _, cf := range flows {
			r := curve.Rate(cf.Time) + BasisPointsToDecimal(spreadBP)
			r = math.Max(zSpreadRateFloor, r)
			pv += cf.Amount / math.Pow(1+r/2, 2*cf.Time)
		}
		return pv - price
	}

	lo, hi := zSpreadBracketLo, zSpreadBracketHi
	fLo, fHi := objective(lo), objective(hi)
	if fLo*fHi > 0 {
		return 0, ErrZSpreadNoRoot
	}

	for iter := 0; iter < zSpreadMaxIter; iter++ {
		mid := (lo + hi) / 2
		fMid := objective(mid)

		if math.Abs(fMid) < zSpreadTolerance {
			return mid, nil
		}

		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	return (lo + hi) / 2, nil
}
