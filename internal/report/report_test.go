package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	assert.Equal(t, "Black-Scholes", Text("Black-Scholes").String())
	assert.Equal(t, "3.844308", Number(3.844308).String())
	assert.Equal(t, "0.000000", Number(0).String())
	assert.Equal(t, "-0.693147", Number(-0.6931472).String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"method", "european"}, [][]Cell{
		{Text("Black-Scholes"), Number(3.844308)},
	})

	out := buf.String()
	assert.Contains(t, out, "Black-Scholes")
	assert.Contains(t, out, "3.844308")
	assert.Contains(t, out, "METHOD")
}

func sampleRows() []Row {
	return []Row{
		{Name: "demo_put", Method: "Black-Scholes", NPV: 3.844308, Delta: -0.454561, Gamma: 0.054749, Vega: 14.191613, Theta: -0.429062, Rho: -21.448427},
		{Name: "demo_call", Method: "Black-Scholes", NPV: 4.759422, Delta: 0.779131},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(sampleRows(), dir))

	f, err := os.Open(filepath.Join(dir, "results.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ResultHeader(), records[0])
	assert.Equal(t, "demo_put", records[1][0])
	assert.Equal(t, "3.844308", records[1][2])
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteJSON(sampleRows(), dir))

	b, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)

	var rows []Row
	require.NoError(t, json.Unmarshal(b, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "demo_call", rows[1].Name)
	assert.InDelta(t, 4.759422, rows[1].NPV, 1e-9)
}
