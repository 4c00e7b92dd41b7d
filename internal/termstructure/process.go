package termstructure

import (
	"math"
	"time"

	"github.com/contactkeval/equity-option/internal/daycount"
	"github.com/contactkeval/equity-option/internal/market"
	"github.com/contactkeval/equity-option/internal/pricing"
)

// Process bundles the inputs of a Black-Scholes-Merton valuation: spot
// quote, dividend curve, discount curve and volatility surface, anchored
// at an explicit valuation date.
type Process struct {
	Spot     market.Quote
	Dividend DiscountCurve
	Discount DiscountCurve
	Vol      *ConstantVol

	// ValuationDate anchors time-to-maturity measurement; it is carried
	// here rather than read from process-wide settings.
	ValuationDate time.Time
	DayCount      daycount.Convention
}

func NewProcess(spot market.Quote, dividend, discount DiscountCurve, vol *ConstantVol,
	valuation time.Time, dc daycount.Convention) *Process {
	return &Process{
		Spot:          spot,
		Dividend:      dividend,
		Discount:      discount,
		Vol:           vol,
		ValuationDate: valuation,
		DayCount:      dc,
	}
}

// PriceEuropean values a European option maturing at maturity, with
// Greeks. The flat rates the pricer needs are recovered from the curves'
// discount factors, so any DiscountCurve implementation plugs in.
func (p *Process) PriceEuropean(typ pricing.OptionType, strike float64, maturity time.Time) (pricing.PricingResult, error) {
	t := p.DayCount.YearFraction(p.ValuationDate, maturity)
	spec := pricing.OptionSpec{
		Type:           typ,
		Spot:           p.Spot.Value(),
		Strike:         strike,
		RiskFreeRate:   impliedZeroRate(p.Discount, t),
		DividendYield:  impliedZeroRate(p.Dividend, t),
		Volatility:     p.Vol.Vol(t, strike),
		TimeToMaturity: t,
	}
	return pricing.PriceWithGreeks(spec)
}

// impliedZeroRate recovers the continuously-compounded zero rate from a
// curve's discount factor. At t<=0 it reads a one-day horizon instead,
// where the rate itself no longer affects the price.
func impliedZeroRate(c DiscountCurve, t float64) float64 {
	if t <= 0 {
		t = 1.0 / 365
	}
	return -math.Log(c.DiscountFactor(t)) / t
}
