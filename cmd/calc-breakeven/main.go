package main

import (
	"flag"
	"fmt"
	"os"

	"bondlab/internal/bond"
	"bondlab/internal/report"
)

func main() {
	face := flag.Float64("facevalue", 100, "Face value of both bonds")
	freq := flag.Int("freq", 2, "Coupon payments per year")

	nomMaturity := flag.Float64("nominal-maturity", 0, "Nominal bond time to maturity in years")
	nomCoupon := flag.Float64("nominal-coupon", 0, "Nominal bond coupon rate (%)")
	nomYield := flag.Float64("nominal-yield", 0, "Nominal bond yield (decimal)")

	linkMaturity := flag.Float64("linker-maturity", 0, "Index-linked bond time to maturity in years")
	linkCoupon := flag.Float64("linker-coupon", 0, "Index-linked bond real coupon rate (%)")
	linkYield := flag.Float64("linker-yield", 0, "Index-linked bond real yield (decimal)")
	inflation := flag.Float64("inflation", 0, "Current inflation rate (decimal)")

	flag.Parse()

	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})

	for _, name := range []string{"nominal-maturity", "nominal-yield", "linker-maturity", "linker-yield"} {
		if !flagsSet[name] {
			fmt.Printf("Error: -%s flag is required\n", name)
			return
		}
	}

	nominal := bond.Instrument{
		Face:      *face,
		Maturity:  *nomMaturity,
		CouponPct: *nomCoupon,
		Frequency: *freq,
	}
	linker := bond.Instrument{
		Face:      *face,
		Maturity:  *linkMaturity,
		CouponPct: *linkCoupon,
		Frequency: *freq,
	}

	nominalPrice, err := bond.Price(nominal, *nomYield)
	if err != nil {
		fmt.Printf("Error pricing nominal bond: %v\n", err)
		return
	}

	linkerPrice, err := bond.LinkerPrice(linker, *linkYield, *inflation)
	if err != nil {
		fmt.Printf("Error pricing index-linked bond: %v\n", err)
		return
	}

	breakeven, err := bond.BreakevenInflation(nominalPrice, linkerPrice, *nomMaturity)
	if err != nil {
		fmt.Printf("Could not compute breakeven inflation: %v\n", err)
		return
	}

	fmt.Printf("Nominal Bond (%.3f%% at %.0fy):\n", *nomCoupon, *nomMaturity)
	fmt.Printf("\tPrice: %.4f\n", nominalPrice)
	fmt.Printf("\tYield: %.4f%%\n", *nomYield*100)
	fmt.Println()
	fmt.Printf("Index-linked Bond (%.3f%% at %.0fy):\n", *linkCoupon, *linkMaturity)
	fmt.Printf("\tPrice: %.4f\n", linkerPrice)
	fmt.Printf("\tReal Yield: %.4f%%\n", *linkYield*100)
	fmt.Printf("\tNominal Yield (Fisher): %.4f%%\n", bond.RealToNominal(*linkYield, *inflation)*100)
	fmt.Println()

	if breakeven.Approximate {
		fmt.Printf("Breakeven Inflation: %.2f%% (approximate, grid-search fallback)\n", breakeven.Rate*100)
	} else {
		fmt.Printf("Breakeven Inflation: %.2f%%\n", breakeven.Rate*100)
	}
	fmt.Printf("Current Inflation: %.2f%%\n", *inflation*100)
	fmt.Println()

	rows, err := report.InflationLadder(linker, *linkYield, *inflation)
	if err != nil {
		fmt.Printf("Could not compute inflation ladder: %v\n", err)
		return
	}

	report.RenderInflationLadder(os.Stdout, rows)
}
