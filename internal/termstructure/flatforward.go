// Package termstructure models the market state a European option needs:
// discount and dividend curves, a Black volatility surface, and a process
// type that wires them into the pricer.
//
// Curves are plain values anchored at an explicit reference date. There is
// no shared evaluation-date singleton and no change-notification wiring;
// callers re-price after changing an input.
package termstructure

import (
	"math"
	"time"

	"github.com/contactkeval/equity-option/internal/daycount"
)

// DiscountCurve converts a year fraction into a discount factor.
// Implementations must return 1 at t=0 and be strictly positive.
type DiscountCurve interface {
	DiscountFactor(t float64) float64
}

// FlatForward is a flat continuously-compounded zero curve.
type FlatForward struct {
	ReferenceDate time.Time
	Rate          float64
	DayCount      daycount.Convention
}

func NewFlatForward(reference time.Time, rate float64, dc daycount.Convention) *FlatForward {
	return &FlatForward{ReferenceDate: reference, Rate: rate, DayCount: dc}
}

// DiscountFactor returns exp(-r*t) for a year fraction t.
func (c *FlatForward) DiscountFactor(t float64) float64 {
	return math.Exp(-c.Rate * t)
}

// DiscountFactorAt measures t from the curve's reference date under its
// day-count convention.
func (c *FlatForward) DiscountFactorAt(d time.Time) float64 {
	return c.DiscountFactor(c.DayCount.YearFraction(c.ReferenceDate, d))
}

// ZeroRate is constant on a flat curve.
func (c *FlatForward) ZeroRate(t float64) float64 {
	return c.Rate
}

// ConstantVol is a Black volatility surface flat in both expiry and strike.
type ConstantVol struct {
	ReferenceDate time.Time
	Sigma         float64
	DayCount      daycount.Convention
}

func NewConstantVol(reference time.Time, sigma float64, dc daycount.Convention) *ConstantVol {
	return &ConstantVol{ReferenceDate: reference, Sigma: sigma, DayCount: dc}
}

// Vol returns the Black volatility for the given expiry year fraction and
// strike; both are ignored on a constant surface.
func (v *ConstantVol) Vol(t, strike float64) float64 {
	return v.Sigma
}
