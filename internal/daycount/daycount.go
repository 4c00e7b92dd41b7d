// Package daycount converts calendar date spans into year fractions.
//
// The valuation (start) date is always passed explicitly; nothing in this
// package reads a process-wide evaluation date.
package daycount

import (
	"fmt"
	"strings"
	"time"
)

// Convention is a day-count rule.
type Convention int

const (
	// Actual365Fixed divides actual elapsed days by 365.
	Actual365Fixed Convention = iota
	// Actual360 divides actual elapsed days by 360.
	Actual360
	// Thirty360US is the US (NASD) 30/360 rule.
	Thirty360US
)

func (c Convention) String() string {
	switch c {
	case Actual365Fixed:
		return "Actual/365 (Fixed)"
	case Actual360:
		return "Actual/360"
	case Thirty360US:
		return "30/360 (US)"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// Parse accepts the common spellings, e.g. "act/365", "actual/360", "30/360".
func Parse(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "act/365", "actual/365", "act365", "actual365", "act/365f":
		return Actual365Fixed, nil
	case "act/360", "actual/360", "act360", "actual360":
		return Actual360, nil
	case "30/360", "thirty/360", "30360":
		return Thirty360US, nil
	}
	return 0, fmt.Errorf("unknown day-count convention %q", s)
}

// YearFraction returns the year fraction between start and end under the
// convention. A negative span yields a negative fraction; callers decide
// whether that is valid for their use.
func (c Convention) YearFraction(start, end time.Time) float64 {
	switch c {
	case Actual360:
		return daysBetween(start, end) / 360
	case Thirty360US:
		return float64(days30360US(start, end)) / 360
	default:
		return daysBetween(start, end) / 365
	}
}

// daysBetween counts calendar days, ignoring the time-of-day and zone of
// the inputs.
func daysBetween(start, end time.Time) float64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return e.Sub(s).Hours() / 24
}

// days30360US applies the US (NASD) end-of-month adjustments: a start day
// of 31 counts as 30, and an end day of 31 counts as 30 when the start day
// is 30 or 31.
func days30360US(start, end time.Time) int {
	d1, d2 := start.Day(), end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	return 360*(end.Year()-start.Year()) +
		30*(int(end.Month())-int(start.Month())) +
		(d2 - d1)
}
