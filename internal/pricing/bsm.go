// Package pricing implements the closed-form Black-Scholes-Merton valuation
// of European options: continuous dividend yield, constant volatility,
// constant risk-free rate, lognormal underlying.
//
// Every function here is pure and deterministic. Pricing either fully
// succeeds with a complete PricingResult or fails with a ValidationError
// (out-of-domain input) or a DomainError (non-finite intermediate); no
// partial results, no silent clamping.
package pricing

import (
	"fmt"
	"math"
	"strings"
)

// OptionType distinguishes calls from puts.
type OptionType int

const (
	Call OptionType = iota
	Put
)

func (t OptionType) String() string {
	switch t {
	case Call:
		return "Call"
	case Put:
		return "Put"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// ParseOptionType accepts "call"/"c" and "put"/"p", case-insensitive.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("unknown option type %q", s)
}

// OptionSpec carries the market and contract parameters of a single
// European option. All fields are mandatory.
type OptionSpec struct {
	Type           OptionType
	Spot           float64 // S, current underlying price, > 0
	Strike         float64 // K, > 0
	RiskFreeRate   float64 // r, continuously compounded, may be negative
	DividendYield  float64 // q, continuously compounded, may be negative
	Volatility     float64 // sigma, annualized, >= 0
	TimeToMaturity float64 // T, year fraction to expiry, >= 0
}

// PricingResult holds the fair value and, when requested, the standard
// sensitivities.
type PricingResult struct {
	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	// Theta is the value change per year of calendar time; negative for
	// long positions.
	Theta float64
	Rho   float64
}

func (s OptionSpec) validate() error {
	checks := []struct {
		field      string
		value      float64
		ok         bool
		constraint string
	}{
		{"spot", s.Spot, s.Spot > 0, "> 0"},
		{"strike", s.Strike, s.Strike > 0, "> 0"},
		{"riskFreeRate", s.RiskFreeRate, !math.IsNaN(s.RiskFreeRate) && !math.IsInf(s.RiskFreeRate, 0), "finite"},
		{"dividendYield", s.DividendYield, !math.IsNaN(s.DividendYield) && !math.IsInf(s.DividendYield, 0), "finite"},
		{"volatility", s.Volatility, s.Volatility >= 0, ">= 0"},
		{"timeToMaturity", s.TimeToMaturity, s.TimeToMaturity >= 0, ">= 0"},
	}
	for _, c := range checks {
		if !c.ok {
			return &ValidationError{Field: c.field, Value: c.value, Constraint: c.constraint}
		}
	}
	return nil
}

// Price computes the fair value of the option. Greek fields of the result
// are left zero; use PriceWithGreeks when sensitivities are needed.
func Price(spec OptionSpec) (PricingResult, error) {
	return price(spec, false)
}

// PriceWithGreeks computes the fair value together with delta, gamma,
// vega, theta and rho.
func PriceWithGreeks(spec OptionSpec) (PricingResult, error) {
	return price(spec, true)
}

func price(spec OptionSpec, withGreeks bool) (PricingResult, error) {
	if err := spec.validate(); err != nil {
		return PricingResult{}, err
	}

	// T=0 and sigma=0 make the general formula 0/0; both collapse to the
	// discounted intrinsic value on the forward.
	if spec.TimeToMaturity == 0 || spec.Volatility == 0 {
		res := degenerate(spec, withGreeks)
		if err := res.checkFinite(); err != nil {
			return PricingResult{}, err
		}
		return res, nil
	}

	S, K := spec.Spot, spec.Strike
	r, q := spec.RiskFreeRate, spec.DividendYield
	sigma, T := spec.Volatility, spec.TimeToMaturity

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT
	if math.IsNaN(d1) || math.IsInf(d1, 0) {
		return PricingResult{}, &DomainError{Op: "d1", Value: d1}
	}

	discQ := math.Exp(-q * T)
	discR := math.Exp(-r * T)

	var res PricingResult
	switch spec.Type {
	case Call:
		res.Price = S*discQ*normCDF(d1) - K*discR*normCDF(d2)
	case Put:
		res.Price = K*discR*normCDF(-d2) - S*discQ*normCDF(-d1)
	}
	// Deep out-of-the-money round-off can land a hair below zero.
	if res.Price < 0 && res.Price > -1e-12 {
		res.Price = 0
	}

	if withGreeks {
		pdfD1 := normPDF(d1)
		res.Gamma = discQ * pdfD1 / (S * sigma * sqrtT)
		res.Vega = S * discQ * pdfD1 * sqrtT
		switch spec.Type {
		case Call:
			res.Delta = discQ * normCDF(d1)
			res.Theta = -S*discQ*pdfD1*sigma/(2*sqrtT) -
				r*K*discR*normCDF(d2) + q*S*discQ*normCDF(d1)
			res.Rho = K * T * discR * normCDF(d2)
		case Put:
			res.Delta = discQ * (normCDF(d1) - 1)
			res.Theta = -S*discQ*pdfD1*sigma/(2*sqrtT) +
				r*K*discR*normCDF(-d2) - q*S*discQ*normCDF(-d1)
			res.Rho = -K * T * discR * normCDF(-d2)
		}
	}

	if err := res.checkFinite(); err != nil {
		return PricingResult{}, err
	}
	return res, nil
}

// degenerate handles T=0 and sigma=0. The price is the discounted
// intrinsic value on the forward F = S*exp((r-q)*T); at T=0 the discounts
// are 1 and F equals spot, reducing to the plain intrinsic value.
func degenerate(spec OptionSpec, withGreeks bool) PricingResult {
	S, K := spec.Spot, spec.Strike
	r, q, T := spec.RiskFreeRate, spec.DividendYield, spec.TimeToMaturity

	discQ := math.Exp(-q * T)
	discR := math.Exp(-r * T)
	fwd := S * math.Exp((r-q)*T)

	var res PricingResult
	switch spec.Type {
	case Call:
		res.Price = discR * math.Max(fwd-K, 0)
	case Put:
		res.Price = discR * math.Max(K-fwd, 0)
	}

	if withGreeks {
		// Phi(d1) and Phi(d2) collapse to an exercise indicator on the
		// forward; the density terms vanish, so gamma and vega are 0
		// (the distributional limit is a point mass at the strike).
		var itm float64
		switch {
		case fwd > K:
			itm = 1
		case fwd == K:
			itm = 0.5
		}
		switch spec.Type {
		case Call:
			res.Delta = discQ * itm
			res.Theta = -r*K*discR*itm + q*S*discQ*itm
			res.Rho = K * T * discR * itm
		case Put:
			res.Delta = discQ * (itm - 1)
			res.Theta = r*K*discR*(1-itm) - q*S*discQ*(1-itm)
			res.Rho = -K * T * discR * (1 - itm)
		}
	}
	return res
}

func (res PricingResult) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"price", res.Price},
		{"delta", res.Delta},
		{"gamma", res.Gamma},
		{"vega", res.Vega},
		{"theta", res.Theta},
		{"rho", res.Rho},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &DomainError{Op: f.name, Value: f.value}
		}
	}
	return nil
}
