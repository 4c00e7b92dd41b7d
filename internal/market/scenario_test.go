package market

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/equity-option/internal/daycount"
	"github.com/contactkeval/equity-option/internal/pricing"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	path := writeScenarioFile(t, `name,type,spot,strike,rate,dividend,volatility,expiry
demo_put,put,36,40,0.06,0,0.20,1999-05-17
demo_call,call,42,40,0.10,0.01,0.20,1998-11-17
`)

	rows, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "demo_put", rows[0].Name)
	assert.Equal(t, "put", rows[0].Type)
	assert.Equal(t, 36.0, rows[0].Spot)
	assert.Equal(t, 40.0, rows[0].Strike)
	assert.Equal(t, 0.06, rows[0].Rate)
	assert.Equal(t, 0.20, rows[0].Volatility)
	assert.Equal(t, time.Date(1999, time.May, 17, 0, 0, 0, 0, time.UTC), rows[0].Expiry.Time)
}

func TestLoadScenarios_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeScenarioFile(t, "name,type,spot,strike,rate,dividend,volatility,expiry\n")
		_, err := LoadScenarios(path)
		assert.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		path := writeScenarioFile(t, `name,type,spot,strike,rate,dividend,volatility,expiry
bad,put,36,40,0.06,0,0.20,17-May-1999
`)
		_, err := LoadScenarios(path)
		assert.Error(t, err)
	})
}

func TestScenario_OptionSpec(t *testing.T) {
	sc := Scenario{
		Name:       "demo_put",
		Type:       "put",
		Spot:       36,
		Strike:     40,
		Rate:       0.06,
		Volatility: 0.20,
		Expiry:     CSVDate{time.Date(1999, time.May, 17, 0, 0, 0, 0, time.UTC)},
	}
	valuation := time.Date(1998, time.May, 17, 0, 0, 0, 0, time.UTC)

	spec, err := sc.OptionSpec(valuation, daycount.Actual365Fixed)
	require.NoError(t, err)
	assert.Equal(t, pricing.Put, spec.Type)
	assert.InDelta(t, 1.0, spec.TimeToMaturity, 1e-12)

	res, err := pricing.Price(spec)
	require.NoError(t, err)
	assert.InDelta(t, 3.844308, res.Price, 1e-5)

	sc.Type = "straddle"
	_, err = sc.OptionSpec(valuation, daycount.Actual365Fixed)
	assert.Error(t, err)
}

func TestSimpleQuote(t *testing.T) {
	q := NewSimpleQuote(36)
	assert.Equal(t, 36.0, q.Value())
	q.SetValue(37.5)
	assert.Equal(t, 37.5, q.Value())
}
