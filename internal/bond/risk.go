package bond

// Central-difference bump defaults. The bump must be small enough for local
// linearity and large enough to avoid floating-point cancellation; no
// automatic step-size selection is performed.
const (
	// DefaultYieldBump is 100bp, the conventional duration/convexity bump.
	DefaultYieldBump = 0.01
	// DefaultSpreadBump is 1bp, expressed as a decimal.
	DefaultSpreadBump = 0.0001
)

// ModifiedDuration estimates the first-order price sensitivity to yield.
// The yield is recovered from the observed price, then the bond is re-priced
// at yield±dy:
//
//	(price(y-dy) - price(y+dy)) / (2 × price × dy)
//
// Parameters:
//
//	inst:  Bond terms.
//	price: Observed market price.
//	dy:    Yield bump (decimal); DefaultYieldBump for the standard 100bp.
func ModifiedDuration(inst Instrument, price, dy float64) (float64, error) {
	if dy <= 0 {
		return 0, ErrInvalidBump
	}

	ytm, err := YieldToMaturity(inst, price, DefaultYieldGuess)
	if err != nil {
		return 0, err
	}

	down, err := Price(inst, ytm-dy)
	if err != nil {
		return 0, err
	}
	up, err := Price(inst, ytm+dy)
	if err != nil {
		return 0, err
	}

	return (down - up) / (2 * price * dy), nil
}

// Convexity estimates the second-order price sensitivity to yield using the
// same central-difference bump as ModifiedDuration:
//
//	(price(y-dy) + price(y+dy) - 2×price) / (price × dy²)
func Convexity(inst Instrument, price, dy float64) (float64, error) {
	if dy <= 0 {
		return 0, ErrInvalidBump
	}

	ytm, err := YieldToMaturity(inst, price, DefaultYieldGuess)
	if err != nil {
		return 0, err
	}

	down, err := Price(inst, ytm-dy)
	if err != nil {
		return 0, err
	}
	up, err := Price(inst, ytm+dy)
	if err != nil {
		return 0, err
	}

	return (down + up - 2*price) / (price * dy * dy), nil
}

// CreditSpreadDuration estimates price sensitivity to the credit spread,
// holding the risk-free rate fixed at the caller-supplied base (commonly 0)
// to isolate the spread component.
//
// Parameters:
//
//	inst:     Bond terms.
//	price:    Observed market price.
//	riskFree: Base risk-free rate held fixed (decimal).
//	spreadBP: Current credit spread in basis points.
//	ds:       Spread bump (decimal); DefaultSpreadBump for 1bp.
func CreditSpreadDuration(inst Instrument, price, riskFree, spreadBP, ds float64) (float64, error) {
	if ds <= 0 {
		return 0, ErrInvalidBump
	}
	if price <= 0 {
		return 0, ErrInvalidPrice
	}

	dsBP := ds * 10_000

	up, err := CorporatePrice(inst, riskFree, spreadBP+dsBP)
	if err != nil {
		return 0, err
	}
	down, err := CorporatePrice(inst, riskFree, spreadBP-dsBP)
	if err != nil {
		return 0, err
	}

	return -(up - down) / (2 * price * ds), nil
}

// DefaultProbability estimates the annualized risk-neutral default
// probability implied by a credit spread under a constant-recovery
// assumption:
//
//	pd = spread / (1 - recovery)
//
// Parameters:
//
//	spreadBP: Credit spread in basis points.
//	recovery: Expected recovery rate in default (decimal), must be < 1.
func DefaultProbability(spreadBP, recovery float64) (float64, error) {
	if recovery >= 1 {
		return 0, ErrInvalidRecoveryRate
	}
	return BasisPointsToDecimal(spreadBP) / (1 - recovery), nil
}
