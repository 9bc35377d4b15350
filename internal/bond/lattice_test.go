package bond_test

import (
	"math"
	"testing"

	"bondlab/internal/bond"
)

func TestOptionAdjustedPriceZeroVolatility(t *testing.T) {
	t.Parallel()

	// With zero volatility every node carries the root rate, so the lattice
	// collapses to continuously compounded discounting of the schedule.
	inst := bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 2}
	const riskFree, spreadBP = 0.0479, 85.0

	// 40 steps give dt=0.25, so every semi-annual payment lands exactly on
	// a slice.
	got, err := bond.OptionAdjustedPrice(inst, riskFree, spreadBP, 0, 40)
	if err != nil {
		t.Fatalf("OptionAdjustedPrice: %v", err)
	}

	flows, err := inst.Schedule()
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	rate := riskFree + bond.BasisPointsToDecimal(spreadBP)
	want := 0.0
	for _, cf := range flows {
		want += cf.Amount * math.Exp(-rate*cf.Time)
	}

	if math.Abs(got-want) > 1e-8 {
		t.Fatalf("zero-vol lattice price = %.8f, want %.8f", got, want)
	}
}

func TestOptionAdjustedPriceSmallVolatilityNearZeroVol(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 36.2, CouponPct: 2.25, Frequency: 2}

	base, err := bond.OptionAdjustedPrice(inst, 0.0479, 85, 0, 50)
	if err != nil {
		t.Fatalf("OptionAdjustedPrice vol=0: %v", err)
	}
	small, err := bond.OptionAdjustedPrice(inst, 0.0479, 85, 0.001, 50)
	if err != nil {
		t.Fatalf("OptionAdjustedPrice vol=0.001: %v", err)
	}

	if math.Abs(small-base)/base > 0.02 {
		t.Fatalf("tiny volatility moved price from %.4f to %.4f", base, small)
	}
	if small <= 0 {
		t.Fatalf("lattice price = %.4f, want > 0", small)
	}
}

func TestOptionAdjustedPriceValidation(t *testing.T) {
	t.Parallel()

	inst := bond.Instrument{Face: 100, Maturity: 10, CouponPct: 5, Frequency: 2}

	if _, err := bond.OptionAdjustedPrice(inst, 0.05, 85, 0.15, 0); err != bond.ErrInvalidSteps {
		t.Fatalf("steps=0: err = %v, want %v", err, bond.ErrInvalidSteps)
	}
	if _, err := bond.OptionAdjustedPrice(inst, 0.05, 85, -0.1, 50); err != bond.ErrInvalidVolatility {
		t.Fatalf("vol<0: err = %v, want %v", err, bond.ErrInvalidVolatility)
	}
}
