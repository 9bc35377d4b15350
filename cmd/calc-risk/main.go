package main

import (
	"flag"
	"fmt"
	"os"

	"bondlab/internal/bond"
	"bondlab/internal/report"
)

func main() {
	face := flag.Float64("facevalue", 100, "Face value of the bond")
	maturity := flag.Float64("maturity", 0, "Time to maturity in years")
	coupon := flag.Float64("coupon", 0, "Coupon rate (%) of the bond")
	freq := flag.Int("freq", 2, "Coupon payments per year")
	price := flag.Float64("price", 0, "Observed market price of the bond")
	yield := flag.Float64("yield", 0, "Yield to maturity (decimal), used when no price is given")
	bump := flag.Float64("bump", bond.DefaultYieldBump, "Yield bump (decimal) for duration/convexity")

	flag.Parse()

	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})

	if !flagsSet["maturity"] {
		fmt.Println("Error: -maturity flag is required")
		return
	}

	if !flagsSet["price"] && !flagsSet["yield"] {
		fmt.Println("Error: -price or -yield flag is required")
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

	p := *price
	if !flagsSet["price"] {
		var err error
		p, err = bond.Price(inst, *yield)
		if err != nil {
			fmt.Printf("Error pricing bond: %v\n", err)
			return
		}
	}

	ytm, err := bond.YieldToMaturity(inst, p, bond.DefaultYieldGuess)
	if err != nil {
		fmt.Printf("Could not compute yield to maturity: %v\n", err)
		return
	}

	dur, err := bond.ModifiedDuration(inst, p, *bump)
	if err != nil {
		fmt.Printf("Could not compute modified duration: %v\n", err)
		return
	}

	conv, err := bond.Convexity(inst, p, *bump)
	if err != nil {
		fmt.Printf("Could not compute convexity: %v\n", err)
		return
	}

	fmt.Printf("Bond Details:\n")
	fmt.Printf("\tFace Value: %.3f\n", inst.Face)
	fmt.Printf("\tCoupon Rate: %.3f%%\n", inst.CouponPct)
	fmt.Printf("\tMaturity: %.2f years\n", inst.Maturity)
	fmt.Printf("\tPayment Frequency: %d\n", inst.Frequency)
	fmt.Printf("\tPrice: %.4f\n", p)
	fmt.Printf("\tYield to Maturity: %.4f%%\n", ytm*100)
	fmt.Printf("\tModified Duration: %.4f\n", dur)
	fmt.Printf("\tConvexity: %.4f\n", conv)
	fmt.Println()

	rows, err := report.RateLadder(inst, p)
	if err != nil {
		fmt.Printf("Could not compute rate ladder: %v\n", err)
		return
	}

	report.RenderRateLadder(os.Stdout, rows)
}
