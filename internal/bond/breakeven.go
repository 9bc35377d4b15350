package bond

import "math"

const (
	// Breakeven inflation search bracket.
	breakevenBracketLo = -0.10
	breakevenBracketHi = 0.25

	breakevenMaxIter   = 100
	breakevenTolerance = 1e-10

	// Grid resolution for the fallback search.
	breakevenGridPoints = 1000
)

// BreakevenResult is the output of BreakevenInflation.
type BreakevenResult struct {
	// Rate is the breakeven inflation rate as an annual decimal.
	Rate float64
	// Approximate is true when the bracketing solver found no sign change
	// and the rate is the grid-search minimizer of absolute pricing error
	// rather than an exact root. Callers reporting the result should flag
	// the degraded precision.
	Approximate bool
}

// BreakevenInflation solves for the inflation rate at which a nominal bond
// and an inflation-linked bond of the given maturity are worth the same:
//
//	nominalPrice = realPrice × (1 + inflation)^years
//
// Parameters:
//
//	nominalPrice: Price of the nominal bond.
//	realPrice:    Price of the inflation-linked bond.
//	years:        Common maturity horizon in years.
//
// Bisection runs over [-10%, +25%]. If the bracket has no sign change the
// solver falls back to an exhaustive grid search over the same domain and
// returns the minimizer marked Approximate, so a finite value is always
// returned for positive prices.
func BreakevenInflation(nominalPrice, realPrice, years float64) (BreakevenResult, error) {
	if nominalPrice <= 0 || realPrice <= 0 {
		return BreakevenResult{}, ErrInvalidPrice
	}
	if years <= 0 {
		return BreakevenResult{}, ErrInvalidMaturity
	}

	objective := func(inflation float64) float64 {
		return nominalPrice - realPrice*math.Pow(1+inflation, years)
	}

	lo, hi := breakevenBracketLo, breakevenBracketHi
	fLo := objective(lo)
	if fLo*objective(hi) > 0 {
		return gridSearch(objective), nil
	}

	mid := (lo + hi) / 2
	for iter := 0; iter < breakevenMaxIter; iter++ {
		mid = (lo + hi) / 2
		fMid := objective(mid)

		if math.Abs(fMid) < breakevenTolerance {
			break
		}

		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	return BreakevenResult{Rate: mid}, nil
}

// gridSearch scans the bracket and returns the rate minimizing the absolute
// pricing error. Only approximate, but it never fails.
func gridSearch(objective func(float64) float64) BreakevenResult {
	step := (breakevenBracketHi - breakevenBracketLo) / float64(breakevenGridPoints-1)

	best := breakevenBracketLo
	bestErr := math.Abs(objective(best))

	for i := 1; i < breakevenGridPoints; i++ {
		r := breakevenBracketLo + float64(i)*step
		if e := math.Abs(objective(r)); e < bestErr {
			best, bestErr = r, e
		}
	}

	return BreakevenResult{Rate: best, Approximate: true}
}
