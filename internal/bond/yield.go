package bond

import "math"

const (
	// DefaultYieldGuess seeds the Newton-Raphson iteration when the caller
	// has no better starting point.
	DefaultYieldGuess = 0.05

	yieldTolerance = 1e-10
	yieldMaxIter   = 100
)

// YieldToMaturity solves for the single discount rate that equates the
// bond's present value to the observed market price.
//
// Parameters:
//
//	inst:  Bond terms.
//	price: Observed market price.
//	guess: Initial yield estimate (decimal); DefaultYieldGuess works for
//	       normal markets.
//
// Returns:
//
//	Yield to maturity as an annual decimal.
//
// The root is unique because price is strictly monotonic in yield. The
// solver rejects prices outside the achievable range and returns
// ErrYieldNoConvergence or ErrYieldDerivativeTooSmall when the iteration
// fails; callers may retry with a different guess.
func YieldToMaturity(inst Instrument, price, guess float64) (float64, error) {
	return solveYield(inst, price, 0, guess)
}

// CorporateYield solves for the risk-free-rate component of a corporate
// bond's yield, holding the credit spread fixed. The total discount rate is
// the returned yield plus the spread.
//
// Parameters:
//
//	inst:     Bond terms.
//	price:    Observed market price.
//	spreadBP: Credit spread in basis points.
//	guess:    Initial yield estimate (decimal).
func CorporateYield(inst Instrument, price, spreadBP, guess float64) (float64, error) {
	return solveYield(inst, price, BasisPointsToDecimal(spreadBP), guess)
}

// solveYield finds y such that discount(flows, y+spread) == price via
// Newton-Raphson with the analytic price derivative.
func solveYield(inst Instrument, price, spread, guess float64) (float64, error) {
	flows, err := inst.Schedule()
	if err != nil {
		return 0, err
	}

	if price <= 0 {
		return 0, ErrInvalidPrice
	}

	// A price above the undiscounted cash flow total has no root at a
	// positive discount rate.
	total := 0.0
	for _, cf := range flows {
		total += cf.Amount
	}
	if price > total {
		return 0, ErrPriceOutOfRange
	}

	y := guess
	for iter := 0; iter < yieldMaxIter; iter++ {
		dp := discount(flows, y+spread, inst.Frequency) - price
		if math.Abs(dp) < yieldTolerance {
			return y, nil
		}

		d := discountDerivative(flows, y+spread, inst.Frequency)
		if math.Abs(d) < 1e-15 {
			return 0, ErrYieldDerivativeTooSmall
		}

		y = y - dp/d
	}

	return 0, ErrYieldNoConvergence
}
