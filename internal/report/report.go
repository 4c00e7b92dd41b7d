// Package report renders pricing results to the console and writes them
// to CSV/JSON files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
)

// Row is one priced scenario in a results report.
type Row struct {
	Name   string  `json:"name"`
	Method string  `json:"method"`
	NPV    float64 `json:"npv"`
	Delta  float64 `json:"delta"`
	Gamma  float64 `json:"gamma"`
	Vega   float64 `json:"vega"`
	Theta  float64 `json:"theta"`
	Rho    float64 `json:"rho"`
}

// RenderTable writes the cells as an ASCII table.
func RenderTable(w io.Writer, header []string, rows [][]Cell) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("")
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, c.String())
		}
		table.Append(cells)
	}
	table.Render()
}

// ResultCells flattens a row for RenderTable.
func (r Row) ResultCells() []Cell {
	return []Cell{
		Text(r.Name),
		Text(r.Method),
		Number(r.NPV),
		Number(r.Delta),
		Number(r.Gamma),
		Number(r.Vega),
		Number(r.Theta),
		Number(r.Rho),
	}
}

// ResultHeader matches ResultCells column for column.
func ResultHeader() []string {
	return []string{"name", "method", "npv", "delta", "gamma", "vega", "theta", "rho"}
}

func WriteJSON(rows []Row, outdir string) error {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "results.json"), b, 0644)
}

func WriteCSV(rows []Row, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "results.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ResultHeader()); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Name,
			r.Method,
			fmt.Sprintf("%.6f", r.NPV),
			fmt.Sprintf("%.6f", r.Delta),
			fmt.Sprintf("%.6f", r.Gamma),
			fmt.Sprintf("%.6f", r.Vega),
			fmt.Sprintf("%.6f", r.Theta),
			fmt.Sprintf("%.6f", r.Rho),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
