package market

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/contactkeval/equity-option/internal/daycount"
	"github.com/contactkeval/equity-option/internal/pricing"
)

// CSVDate parses yyyy-mm-dd cells.
type CSVDate struct {
	time.Time
}

func (d *CSVDate) UnmarshalCSV(s string) error {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d CSVDate) MarshalCSV() (string, error) {
	return d.Format("2006-01-02"), nil
}

// Scenario is one row of a batch pricing input file.
type Scenario struct {
	Name       string  `csv:"name"`
	Type       string  `csv:"type"`
	Spot       float64 `csv:"spot"`
	Strike     float64 `csv:"strike"`
	Rate       float64 `csv:"rate"`
	Dividend   float64 `csv:"dividend"`
	Volatility float64 `csv:"volatility"`
	Expiry     CSVDate `csv:"expiry"`
}

// LoadScenarios reads a scenario CSV. The file must have a header row
// matching the Scenario csv tags and at least one data row.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []Scenario
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return rows, nil
}

// OptionSpec converts the row into pricer input, measuring time to expiry
// from the given valuation date under the given day-count convention.
func (s Scenario) OptionSpec(valuation time.Time, dc daycount.Convention) (pricing.OptionSpec, error) {
	typ, err := pricing.ParseOptionType(s.Type)
	if err != nil {
		return pricing.OptionSpec{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return pricing.OptionSpec{
		Type:           typ,
		Spot:           s.Spot,
		Strike:         s.Strike,
		RiskFreeRate:   s.Rate,
		DividendYield:  s.Dividend,
		Volatility:     s.Volatility,
		TimeToMaturity: dc.YearFraction(valuation, s.Expiry.Time),
	}, nil
}
