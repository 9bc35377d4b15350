package bond_test

import (
	"math"
	"testing"

	"bondlab/internal/bond"
)

func TestZeroCouponPrice(t *testing.T) {
	t.Parallel()

	got := bond.ZeroCouponPrice(100, 0.02, 2)
	want := 100 / math.Pow(1.02, 2) // 96.1169...
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ZeroCouponPrice = %.6f, want %.6f", got, want)
	}
	if math.Abs(got-96.1169) > 1e-4 {
		t.Fatalf("ZeroCouponPrice = %.6f, want ~96.1169", got)
	}
}

func TestPriceAtParYield(t *testing.T) {
	t.Parallel()

	// A bond priced at its own coupon rate is worth par.
	cases := []struct {
		name string
		inst bond.Instrument
	}{
		{"5% 10y semi-annual", bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 2}},
		{"2.25% 36y semi-annual", bond.Instrument{Face: 100, Maturity: 36, CouponPct: 2.25, Frequency: 2}},
		{"7% 3y annual", bond.Instrument{Face: 1000, Maturity: 3, CouponPct: 7, Frequency: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := bond.Price(tc.inst, bond.PercentToDecimal(tc.inst.CouponPct))
			if err != nil {
				t.Fatalf("Price: %v", err)
			}
			if math.Abs(price-tc.inst.Face) > 1e-8 {
				t.Fatalf("price at par yield = %.8f, want %.8f", price, tc.inst.Face)
			}
		})
	}
}

func TestPriceMonotonicInYield(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 26.2, CouponPct: 1.25, Frequency: 2}

	prev := math.Inf(1)
	for y := -0.02; y <= 0.15; y += 0.005 {
		price, err := bond.Price(inst, y)
		if err != nil {
			t.Fatalf("Price(%.3f): %v", y, err)
		}
		if price >= prev {
			t.Fatalf("price not strictly decreasing at yield %.3f: %.6f >= %.6f", y, price, prev)
		}
		prev = price
	}
}

func TestLinkerPriceZeroInflationMatchesNominal(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 37, CouponPct: 0.5, Frequency: 2}

	nominal, err := bond.Price(inst, 0.0445)
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	linker, err := bond.LinkerPrice(inst, 0.0445, 0)
	if err != nil {
		t.Fatalf("LinkerPrice: %v", err)
	}
	if math.Abs(nominal-linker) > 1e-9 {
		t.Fatalf("linker at zero inflation = %.9f, nominal = %.9f", linker, nominal)
	}
}

func TestLinkerPriceIncreasesWithInflation(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 49, CouponPct: 0.125, Frequency: 2}

	prev := 0.0
	for _, inflation := range []float64{-0.02, 0, 0.02, 0.041, 0.08} {
		price, err := bond.LinkerPrice(inst, -0.0175, inflation)
		if err != nil {
			t.Fatalf("LinkerPrice(%.3f): %v", inflation, err)
		}
		if price <= prev {
			t.Fatalf("linker price not increasing in inflation at %.3f: %.6f <= %.6f", inflation, price, prev)
		}
		prev = price
	}
}

func TestRealToNominal(t *testing.T) {
	t.Parallel()

	got := bond.RealToNominal(0.02, 0.03)
	want := 1.02*1.03 - 1
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("RealToNominal = %.8f, want %.8f", got, want)
	}
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 26.2, CouponPct: 1.25, Frequency: 2}

	flows, err := inst.Schedule()
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	// 26.2 × 2 rounds to 52 periods; the same rule must hold everywhere.
	if len(flows) != 52 {
		t.Fatalf("periods = %d, want 52", len(flows))
	}

	coupon := 1.25 / 100 * 100 / 2
	for i, cf := range flows {
		wantTime := float64(i+1) / 2
		if math.Abs(cf.Time-wantTime) > 1e-12 {
			t.Fatalf("flow %d time = %v, want %v", i, cf.Time, wantTime)
		}
		want := coupon
		if i == len(flows)-1 {
			want += 100
		}
		if math.Abs(cf.Amount-want) > 1e-12 {
			t.Fatalf("flow %d amount = %v, want %v", i, cf.Amount, want)
		}
	}
}

func TestInstrumentValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		inst bond.Instrument
		want error
	}{
		{"zero face", bond.Instrument{Face: 0, Maturity: 10, CouponPct: 5, Frequency: 2}, bond.ErrInvalidFaceValue},
		{"negative maturity", bond.Instrument{Face: 100, Maturity: -1, CouponPct: 5, Frequency: 2}, bond.ErrInvalidMaturity},
		{"negative coupon", bond.Instrument{Face: 100, Maturity: 10, CouponPct: -1, Frequency: 2}, bond.ErrInvalidCoupon},
		{"zero frequency", bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 0}, bond.ErrInvalidFrequency},
		{"sub-period maturity", bond.Instrument{Face: 100, Maturity: 0.1, CouponPct: 5, Frequency: 2}, bond.ErrMaturityTooShort},
		{"valid", bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 2}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.inst.Validate(); err != tc.want {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}
