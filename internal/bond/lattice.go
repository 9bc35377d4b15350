package bond

import "math"

// OptionAdjustedPrice values the bond on a recombining binomial short-rate
// lattice, discounting each node at the prevailing rate plus the credit
// spread. No early-exercise feature is modeled; the lattice is a
// volatility-adjusted discounted cash flow.
//
// Parameters:
//
//	inst:       Bond terms.
//	riskFree:   Short rate at the root node (decimal).
//	spreadBP:   Credit spread in basis points, added at every node.
//	volatility: Annualized short-rate volatility (decimal).
//	steps:      Number of time slices over [0, horizon]; more steps trade
//	            cost for accuracy.
//
// Coupon timing is derived from the actual lattice time slices: a coupon
// paying at time t is injected at the slice nearest t, displacing a payment
// by at most half a slice. This keeps payments aligned for any step count,
// even when steps does not divide the coupon period count evenly.
func OptionAdjustedPrice(inst Instrument, riskFree, spreadBP, volatility float64, steps int) (float64, error) {
	if steps < 1 {
		return 0, ErrInvalidSteps
	}
	if volatility < 0 {
		return 0, ErrInvalidVolatility
	}

	flows, err := inst.Schedule()
	if err != nil {
		return 0, err
	}

	spread := BasisPointsToDecimal(spreadBP)
	coupon := inst.couponPayment()
	dt := inst.horizon() / float64(steps)

	// Up/down multipliers and the risk-neutral up probability. A zero
	// volatility collapses the lattice to a single constant-rate path.
	u := math.Exp(volatility * math.Sqrt(dt))
	d := 1 / u
	p := 0.5
	if u != d {
		p = (1 - d) / (u - d)
	}

	// Node j carries rate riskFree × u^j; recombination keeps the slice
	// width linear in the step count.
	rates := make([]float64, steps+1)
	rates[0] = riskFree
	for j := 1; j <= steps; j++ {
		rates[j] = rates[j-1] * u
	}

	// Each payment lands on the slice nearest its time. Redemption is the
	// terminal value, so only the coupon portion of each flow is mapped.
	couponAt := make([]float64, steps+1)
	for _, cf := range flows {
		k := int(math.Round(cf.Time / dt))
		if k < 1 {
			k = 1
		}
		if k > steps {
			k = steps
		}
		couponAt[k] += coupon
	}

	values := make([]float64, steps+1)
	for j := range values {
		values[j] = inst.Face + couponAt[steps]
	}

	// Back-induct: discount the continuation value one slice, then add any
	// coupon received at that slice so it discounts over the remaining
	// steps only.
	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			cont := p*values[j+1] + (1-p)*values[j]
			values[j] = cont*math.Exp(-(rates[j]+spread)*dt) + couponAt[i]
		}
	}

	return values[0], nil
}
