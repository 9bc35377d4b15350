package bond

import "math"

// ZeroCouponPrice calculates the price of a zero coupon bond.
//
// Parameters:
//
//	face:  Face value of the bond.
//	yield: Annual yield (decimal).
//	years: Time to maturity in years.
//
// Returns:
//
//	face / (1+yield)^years
func ZeroCouponPrice(face, yield, years float64) float64 {
	return face / math.Pow(1+yield, years)
}

// Price calculates the present value of the bond's cash flows discounted at
// a single yield, compounded at the bond's payment frequency.
//
// The result is strictly decreasing in yield for any bond with positive
// coupon and face value, which is what makes the yield solver's root unique.
func Price(inst Instrument, yield float64) (float64, error) {
	flows, err := inst.Schedule()
	if err != nil {
		return 0, err
	}
	return discount(flows, yield, inst.Frequency), nil
}

// CorporatePrice calculates the price of a corporate bond by discounting at
// the risk-free rate plus a credit spread.
//
// Parameters:
//
//	inst:     Bond terms.
//	riskFree: Risk-free rate (decimal).
//	spreadBP: Credit spread in basis points.
func CorporatePrice(inst Instrument, riskFree, spreadBP float64) (float64, error) {
	return Price(inst, riskFree+BasisPointsToDecimal(spreadBP))
}

// LinkerPrice calculates the price of an inflation-linked bond. The face
// value and each real coupon grow at the inflation rate before being
// discounted at the real yield.
//
// Parameters:
//
//	inst:      Bond terms; CouponPct is the real coupon rate.
//	realYield: Real yield (decimal), may be negative.
//	inflation: Assumed constant inflation rate (decimal).
func LinkerPrice(inst Instrument, realYield, inflation float64) (float64, error) {
	flows, err := inst.Schedule()
	if err != nil {
		return 0, err
	}

	f := float64(inst.Frequency)
	price := 0.0
	for _, cf := range flows {
		inflated := cf.Amount * math.Pow(1+inflation, cf.Time)
		price += inflated / math.Pow(1+realYield/f, f*cf.Time)
	}

	return price, nil
}

// RealToNominal converts a real yield to a nominal yield using the Fisher
// equation (1 + nominal) = (1 + real)(1 + inflation).
func RealToNominal(realYield, inflation float64) float64 {
	return (1+realYield)*(1+inflation) - 1
}

// discount sums the present value of flows at the given annual rate,
// compounded freq times per year.
func discount(flows []CashFlow, rate float64, freq int) float64 {
	f := float64(freq)
	pv := 0.0
	for _, cf := range flows {
		pv += cf.Amount / math.Pow(1+rate/f, f*cf.Time)
	}
	return pv
}

// discountDerivative is d(discount)/d(rate), used by the Newton solver.
func discountDerivative(flows []CashFlow, rate float64, freq int) float64 {
	f := float64(freq)
	d := 0.0
	for _, cf := range flows {
		d += -cf.Time * cf.Amount / math.Pow(1+rate/f, f*cf.Time+1)
	}
	return d
}
