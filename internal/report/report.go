// Package report iterates the valuation engine over small grids of rate,
// spread and inflation deltas and renders the results as console tables.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"bondlab/internal/bond"
)

// RateScenario is one row of a yield-shock ladder.
type RateScenario struct {
	// DeltaPct is the yield shock in percentage points.
	DeltaPct float64
	// LinearChange is the duration-only price change estimate.
	LinearChange float64
	// ConvexityChange adds the second-order correction.
	ConvexityChange float64
	// Price is the fully re-priced value at the shocked yield.
	Price float64
	// PctChange is the actual percentage price change.
	PctChange float64
}

// RateLadder re-prices the bond at yield shocks of -4%..+4% in whole
// percentage points (skipping zero) and compares the duration and
// duration+convexity approximations against the exact re-pricing.
func RateLadder(inst bond.Instrument, price float64) ([]RateScenario, error) {
	ytm, err := bond.YieldToMaturity(inst, price, bond.DefaultYieldGuess)
	if err != nil {
		return nil, err
	}
	dur, err := bond.ModifiedDuration(inst, price, bond.DefaultYieldBump)
	if err != nil {
		return nil, err
	}
	conv, err := bond.Convexity(inst, price, bond.DefaultYieldBump)
	if err != nil {
		return nil, err
	}

	var rows []RateScenario
	for dr := -4; dr <= 4; dr++ {
		if dr == 0 {
			continue
		}
		delta := float64(dr) / 100

		linear := -dur * delta * price
		withConv := linear + 0.5*conv*delta*delta*price

		shocked, err := bond.Price(inst, ytm+delta)
		if err != nil {
			return nil, err
		}

		rows = append(rows, RateScenario{
			DeltaPct:        float64(dr),
			LinearChange:    linear,
			ConvexityChange: withConv,
			Price:           shocked,
			PctChange:       (shocked/price - 1) * 100,
		})
	}

	return rows, nil
}

// RenderRateLadder writes a rate ladder as a console table.
func RenderRateLadder(w io.Writer, rows []RateScenario) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rate Change", "Linear Approx", "With Convexity", "Actual Price", "% Change"})

	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%+.0f%%", r.DeltaPct),
			fmt.Sprintf("%.2f", r.LinearChange),
			fmt.Sprintf("%.2f", r.ConvexityChange),
			fmt.Sprintf("%.2f", r.Price),
			fmt.Sprintf("%+.2f%%", r.PctChange),
		})
	}

	table.Render()
}

// SpreadScenario is one row of a credit-spread-shock ladder.
type SpreadScenario struct {
	// DeltaBP is the spread shock in basis points.
	DeltaBP float64
	// Price at the shocked spread.
	Price float64
	// PctChange is the percentage price change from the base spread.
	PctChange float64
}

// SpreadLadder re-prices a corporate bond at spread shocks of -500..+500bp
// in 50bp steps, holding the risk-free rate fixed.
func SpreadLadder(inst bond.Instrument, riskFree, spreadBP float64) ([]SpreadScenario, error) {
	base, err := bond.CorporatePrice(inst, riskFree, spreadBP)
	if err != nil {
		return nil, err
	}

	var rows []SpreadScenario
	for ds := -500.0; ds <= 500; ds += 50 {
		if ds == 0 {
			continue
		}
		shocked, err := bond.CorporatePrice(inst, riskFree, spreadBP+ds)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SpreadScenario{
			DeltaBP:   ds,
			Price:     shocked,
			PctChange: (shocked/base - 1) * 100,
		})
	}

	return rows, nil
}

// RenderSpreadLadder writes a spread ladder as a console table.
func RenderSpreadLadder(w io.Writer, rows []SpreadScenario) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Spread Change", "Price", "% Change"})

	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%+.0fbp", r.DeltaBP),
			fmt.Sprintf("%.2f", r.Price),
			fmt.Sprintf("%+.2f%%", r.PctChange),
		})
	}

	table.Render()
}

// InflationScenario is one row of an inflation-shock ladder for an
// inflation-linked bond.
type InflationScenario struct {
	// DeltaPct is the inflation shock in percentage points.
	DeltaPct float64
	// Price at the shocked inflation rate.
	Price float64
	// PctChange is the percentage price change from the base rate.
	PctChange float64
}

// InflationLadder re-prices a linker at inflation shocks of -6%..+10% in
// whole percentage points, holding the real yield fixed.
func InflationLadder(inst bond.Instrument, realYield, inflation float64) ([]InflationScenario, error) {
	base, err := bond.LinkerPrice(inst, realYield, inflation)
	if err != nil {
		return nil, err
	}

	var rows []InflationScenario
	for di := -6; di <= 10; di++ {
		if di == 0 {
			continue
		}
		delta := float64(di) / 100
		shocked, err := bond.LinkerPrice(inst, realYield, inflation+delta)
		if err != nil {
			return nil, err
		}
		rows = append(rows, InflationScenario{
			DeltaPct:  float64(di),
			Price:     shocked,
			PctChange: (shocked/base - 1) * 100,
		})
	}

	return rows, nil
}

// RenderInflationLadder writes an inflation ladder as a console table.
func RenderInflationLadder(w io.Writer, rows []InflationScenario) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Inflation Change", "Price", "% Change"})

	for _, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%+.0f%%", r.DeltaPct),
			fmt.Sprintf("%.2f", r.Price),
			fmt.Sprintf("%+.2f%%", r.PctChange),
		})
	}

	table.Render()
}
