package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bondlab/internal/bond"
	"bondlab/internal/report"
)

// parseCurve reads a benchmark curve from "tenor=yield%" pairs, e.g.
// "1=4.50,2=4.55,10=4.65,30=4.79".
func parseCurve(s string) (bond.Curve, error) {
	var curve bond.Curve

	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid curve point %q", pair)
		}
		tenor, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tenor %q", parts[0])
		}
		yield, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid yield %q", parts[1])
		}
		curve = append(curve, bond.CurvePoint{Tenor: tenor, Yield: bond.PercentToDecimal(yield)})
	}

	if err := curve.Validate(); err != nil {
		return nil, err
	}

	return curve, nil
}

func main() {
	face := flag.Float64("facevalue", 100, "Face value of the bond")
	maturity := flag.Float64("maturity", 0, "Time to maturity in years")
	coupon := flag.Float64("coupon", 0, "Coupon rate (%) of the bond")
	freq := flag.Int("freq", 2, "Coupon payments per year")
	riskFree := flag.Float64("riskfree", 0, "Risk-free rate (decimal)")
	spread := flag.Float64("spread", 0, "Credit spread (basis points)")
	recovery := flag.Float64("recovery", 0.4, "Expected recovery rate in default (decimal)")
	vol := flag.Float64("vol", 0.15, "Short-rate volatility (decimal) for the lattice price")
	steps := flag.Int("steps", 50, "Lattice time steps")
	curveStr := flag.String("curve", "", "Benchmark curve as tenor=yield% pairs, e.g. 1=4.50,30=4.79")

	flag.Parse()

	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})

	if !flagsSet["maturity"] || !flagsSet["riskfree"] || !flagsSet["spread"] {
		fmt.Println("Error: -maturity, -riskfree and -spread flags are required")
		return
	}

	inst := bond.Instrument{
		Face:      *face,
		Maturity:  *maturity,
		CouponPct: *coupon,
		Frequency: *freq,
	}

	if err := inst.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	price, err := bond.CorporatePrice(inst, *riskFree, *spread)
	if err != nil {
		fmt.Printf("Error pricing bond: %v\n", err)
		return
	}

	creditDur, err := bond.CreditSpreadDuration(inst, price, 0, *spread, bond.DefaultSpreadBump)
	if err != nil {
		fmt.Printf("Could not compute credit spread duration: %v\n", err)
		return
	}

	pd, err := bond.DefaultProbability(*spread, *recovery)
	if err != nil {
		fmt.Printf("Could not compute default probability: %v\n", err)
		return
	}

	fmt.Printf("Corporate Bond Analysis\n")
	fmt.Printf("\tFace Value: %.3f\n", inst.Face)
	fmt.Printf("\tCoupon Rate: %.3f%%\n", inst.CouponPct)
	fmt.Printf("\tMaturity: %.2f years\n", inst.Maturity)
	fmt.Printf("\tRisk-free Rate: %.4f%%\n", *riskFree*100)
	fmt.Printf("\tCredit Spread: %.0f bps\n", *spread)
	fmt.Printf("\tPrice: %.4f\n", price)
	fmt.Printf("\tYield to Maturity: %.4f%%\n", (*riskFree+bond.BasisPointsToDecimal(*spread))*100)
	fmt.Printf("\tCredit Spread Duration: %.4f\n", creditDur)
	fmt.Printf("\tAnnual Default Probability: %.4f%%\n", pd*100)

	oas, err := bond.OptionAdjustedPrice(inst, *riskFree, *spread, *vol, *steps)
	if err != nil {
		fmt.Printf("Could not compute option-adjusted price: %v\n", err)
		return
	}
	fmt.Printf("\tOption-Adjusted Price: %.4f\n", oas)

	if *curveStr != "" {
		curve, err := parseCurve(*curveStr)
		if err != nil {
			fmt.Printf("Error parsing curve: %v\n", err)
			return
		}

		flows, err := inst.Schedule()
		if err != nil {
			fmt.Printf("Error building schedule: %v\n", err)
			return
		}

		zspd, err := bond.ZSpread(price, curve, flows)
		switch err {
		case nil:
			fmt.Printf("\tZ-spread: %.0f bps\n", zspd)
		case bond.ErrZSpreadNoRoot:
			fmt.Printf("\tZ-spread: not found in [0, 500] bps\n")
		default:
			fmt.Printf("Could not compute z-spread: %v\n", err)
			return
		}
	}

	fmt.Println()

	rows, err := report.SpreadLadder(inst, *riskFree, *spread)
	if err != nil {
		fmt.Printf("Could not compute spread ladder: %v\n", err)
		return
	}

	report.RenderSpreadLadder(os.Stdout, rows)
}
