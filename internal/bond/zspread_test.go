package bond_test

import (
	"math"
	"testing"

	"bondlab/internal/bond"
)

var benchmarkCurve = bond.Curve{
	{Tenor: 1, Yield: 0.0450},
	{Tenor: 2, Yield: 0.0455},
	{Tenor: 5, Yield: 0.0460},
	{Tenor: 10, Yield: 0.0465},
	{Tenor: 20, Yield: 0.0470},
	{Tenor: 30, Yield: 0.0479},
}

// curvePV discounts flows at curve+spread the same way the solver defines
// fair value: semi-annual compounding, rate floored at 1bp.
func curvePV(curve bond.Curve, flows []bond.CashFlow, spreadBP float64) float64 {
	pv := 0.0
	for _, cf := range flows {
		r := math.Max(0.0001, curve.Rate(cf.Time)+spreadBP/10_000)
		pv += cf.Amount / math.Pow(1+r/2, 2*cf.Time)
	}
	return pv
}

func TestCurveRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		tenor float64
		want  float64
	}{
		{"clamp below", 0.5, 0.0450},
		{"exact point", 5, 0.0460},
		{"midpoint", 1.5, 0.04525},
		{"between 20 and 30", 25, 0.04745},
		{"clamp above", 40, 0.0479},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := benchmarkCurve.Rate(tc.tenor)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Rate(%.1f) = %.6f, want %.6f", tc.tenor, got, tc.want)
			}
		})
	}
}

func TestCurveValidate(t *testing.T) {
	t.Parallel()

	if err := (bond.Curve{}).Validate(); err != bond.ErrEmptyCurve {
		t.Fatalf("empty curve: err = %v, want %v", err, bond.ErrEmptyCurve)
	}

	unordered := bond.Curve{{Tenor: 5, Yield: 0.04}, {Tenor: 5, Yield: 0.05}}
	if err := unordered.Validate(); err != bond.ErrCurveNotAscending {
		t.Fatalf("unordered curve: err = %v, want %v", err, bond.ErrCurveNotAscending)
	}

	if err := benchmarkCurve.Validate(); err != nil {
		t.Fatalf("valid curve: err = %v", err)
	}
}

func TestZSpreadRecoversKnownSpread(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 36.2, CouponPct: 2.25, Frequency: 2}
	flows, err := inst.Schedule()
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	for _, spreadBP := range []float64{25, 120, 480} {
		price := curvePV(benchmarkCurve, flows, spreadBP)

		got, err := bond.ZSpread(price, benchmarkCurve, flows)
		if err != nil {
			t.Fatalf("ZSpread(%.0fbp): %v", spreadBP, err)
		}
		if math.Abs(got-spreadBP) > 1e-3 {
			t.Fatalf("ZSpread = %.6fbp, want %.6fbp", got, spreadBP)
		}

		// The implied price at the solved spread matches the observation.
		if implied := curvePV(benchmarkCurve, flows, got); math.Abs(implied-price) > 1e-6 {
			t.Fatalf("implied price %.8f, observed %.8f", implied, price)
		}
	}
}

func TestZSpreadNoRoot(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 2}
	flows, err := inst.Schedule()
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	// A price above the zero-spread value needs a negative spread; outside
	// the bracket, so the sentinel must come back.
	tooHigh := curvePV(benchmarkCurve, flows, 0) + 10
	if _, err := bond.ZSpread(tooHigh, benchmarkCurve, flows); err != bond.ErrZSpreadNoRoot {
		t.Fatalf("high price: err = %v, want %v", err, bond.ErrZSpreadNoRoot)
	}

	// A price below the 500bp value needs a wider spread than the bracket
	// allows.
	tooLow := curvePV(benchmarkCurve, flows, 500) - 10
	if _, err := bond.ZSpread(tooLow, benchmarkCurve, flows); err != bond.ErrZSpreadNoRoot {
		t.Fatalf("low price: err = %v, want %v", err, bond.ErrZSpreadNoRoot)
	}
}

func TestZSpreadValidation(t *testing.T) {
	t.Parallel()

	flows := []bond.CashFlow{{Time: 1, Amount: 105}}

	if _, err := bond.ZSpread(0, benchmarkCurve, flows); err != bond.ErrInvalidPrice {
		t.Fatalf("zero price: err = %v, want %v", err, bond.ErrInvalidPrice)
	}
	if _, err := bond.ZSpread(100, bond.Curve{}, flows); err != bond.ErrEmptyCurve {
		t.Fatalf("empty curve: err = %v, want %v", err, bond.ErrEmptyCurve)
	}
	if _, err := bond.ZSpread(100, benchmarkCurve, nil); err != bond.ErrEmptyCashflows {
		t.Fatalf("no flows: err = %v, want %v", err, bond.ErrEmptyCashflows)
	}
}
