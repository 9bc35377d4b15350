// Package bond prices fixed-income instruments and derives their risk
// metrics. Every function is pure: all state is passed in and results are
// returned, so concurrent callers need no synchronization.
//
// Rates inside the package are annual decimals (0.05 = 5%). Market quoting
// conventions live only at the boundary: Instrument.CouponPct is quoted in
// percentage points and credit spreads are taken in basis points, each
// converted exactly once on the way in.
package bond

import "math"

// BasisPointsToDecimal converts a spread quoted in basis points to an
// annual decimal rate (85bp -> 0.0085).
func BasisPointsToDecimal(bp float64) float64 {
	return bp / 10_000
}

// PercentToDecimal converts a rate quoted in percentage points to an
// annual decimal rate (2.25 -> 0.0225).
func PercentToDecimal(pct float64) float64 {
	return pct / 100
}

// Instrument describes a fixed-coupon bullet bond.
type Instrument struct {
	// Face is the redemption amount paid at maturity.
	Face float64
	// Maturity is the time to maturity in years.
	Maturity float64
	// CouponPct is the annual coupon rate in percentage points (2.25 = 2.25%).
	CouponPct float64
	// Frequency is the number of coupon payments per year (2 = semi-annual).
	Frequency int
}

// CashFlow is a single scheduled payment.
type CashFlow struct {
	// Time is the payment time in years from now.
	Time float64
	// Amount is the payment amount; the final cash flow includes redemption.
	Amount float64
}

func (inst Instrument) Validate() error {
	if inst.Face <= 0 {
		return ErrInvalidFaceValue
	}
	if inst.Maturity <= 0 {
		return ErrInvalidMaturity
	}
	if inst.CouponPct < 0 {
		return ErrInvalidCoupon
	}
	if inst.Frequency < 1 {
		return ErrInvalidFrequency
	}
	if inst.periods() < 1 {
		return ErrMaturityTooShort
	}
	return nil
}

// periods is the whole number of coupon periods to maturity.
//
// Maturity*Frequency is rounded to the nearest integer and that one rule is
// used everywhere: the schedule, pricing, yield solving and the
// finite-difference metrics all see the same period count, so a non-integer
// Maturity*Frequency cannot make price/yield round trips diverge.
func (inst Instrument) periods() int {
	return int(math.Round(inst.Maturity * float64(inst.Frequency)))
}

// horizon is the time of the final scheduled payment. Redemption discounts
// at this time, not at the raw Maturity, keeping it consistent with the
// rounded period count.
func (inst Instrument) horizon() float64 {
	return float64(inst.periods()) / float64(inst.Frequency)
}

// couponPayment is the coupon amount paid each period.
func (inst Instrument) couponPayment() float64 {
	return PercentToDecimal(inst.CouponPct) * inst.Face / float64(inst.Frequency)
}

// Schedule returns the bond's cash flows in ascending time order. Payments
// fall at 1/freq, 2/freq, ... and the final payment includes redemption of
// the face value.
func (inst Instrument) Schedule() ([]CashFlow, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	n := inst.periods()
	coupon := inst.couponPayment()

	flows := make([]CashFlow, n)
	for i := 1; i <= n; i++ {
		flows[i-1] = CashFlow{
			Time:   float64(i) / float64(inst.Frequency),
			Amount: coupon,
		}
	}
	flows[n-1].Amount += inst.Face

	return flows, nil
}
