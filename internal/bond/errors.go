package bond

import "fmt"

var (
	ErrInvalidFaceValue        = fmt.Errorf("face value must be positive")
	ErrInvalidMaturity         = fmt.Errorf("maturity must be positive")
	ErrInvalidFrequency        = fmt.Errorf("payment frequency must be at least 1")
	ErrInvalidCoupon           = fmt.Errorf("coupon rate must not be negative")
	ErrMaturityTooShort        = fmt.Errorf("maturity is shorter than one coupon period")
	ErrInvalidPrice            = fmt.Errorf("price must be positive")
	ErrPriceOutOfRange         = fmt.Errorf("price exceeds the undiscounted cash flow total")
	ErrInvalidBump             = fmt.Errorf("bump size must be positive")
	ErrInvalidRecoveryRate     = fmt.Errorf("recovery rate must be less than 1")
	ErrInvalidVolatility       = fmt.Errorf("volatility must not be negative")
	ErrInvalidSteps            = fmt.Errorf("lattice must have at least one step")
	ErrEmptyCurve              = fmt.Errorf("curve has no points")
	ErrCurveNotAscending       = fmt.Errorf("curve tenors must be strictly increasing")
	ErrEmptyCashflows          = fmt.Errorf("cash flow schedule is empty")
	ErrZSpreadNoRoot           = fmt.Errorf("no z-spread in the search bracket matches the price")
	ErrYieldNoConvergence      = fmt.Errorf("Newton-Raphson failed to converge within max iterations")
	ErrYieldDerivativeTooSmall = fmt.Errorf("Newton-Raphson failed (derivative is too small)")
)
