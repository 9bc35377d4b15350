package bond

// CurvePoint is a single benchmark curve observation.
type CurvePoint struct {
	// Tenor in years.
	Tenor float64
	// Yield as an annual decimal.
	Yield float64
}

// Curve is a benchmark yield curve, ordered by strictly increasing tenor.
type Curve []CurvePoint

func (c Curve) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCurve
	}
	for i := 1; i < len(c); i++ {
		if c[i].Tenor <= c[i-1].Tenor {
			return ErrCurveNotAscending
		}
	}
	return nil
}

// Rate returns the linearly interpolated yield at tenor t. Tenors outside
// the curve are clamped to the first or last point.
func (c Curve) Rate(t float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if t <= c[0].Tenor {
		return c[0].Yield
	}
	last := c[len(c)-1]
	if t >= last.Tenor {
		return last.Yield
	}

	for i := 1; i < len(c); i++ {
		if t <= c[i].Tenor {
			lo, hi := c[i-1], c[i]
			w := (t - lo.Tenor) / (hi.Tenor - lo.Tenor)
			return lo.Yield + w*(hi.Yield-lo.Yield)
		}
	}

	return last.Yield
}
