package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/equity-option/internal/daycount"
	"github.com/contactkeval/equity-option/internal/market"
	"github.com/contactkeval/equity-option/internal/pricing"
	"github.com/contactkeval/equity-option/internal/report"
	"github.com/contactkeval/equity-option/internal/termstructure"
)

const dateLayout = "2006-01-02"

func main() {
	// .env is optional; explicit environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded .env")
	}
	if lvl, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	root := &cobra.Command{
		Use:   "equity-option",
		Short: "Black-Scholes-Merton European option pricing demo",
	}
	root.AddCommand(priceCmd(), batchCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// priceCmd prices a single European option. The flag defaults reproduce
// the classic one-year put example: S=36, K=40, r=6%, sigma=20%.
func priceCmd() *cobra.Command {
	var (
		optType    string
		spot       float64
		strike     float64
		rate       float64
		dividend   float64
		vol        float64
		settlement string
		maturity   string
		dayCount   string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single European option and print NPV and Greeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			typ, err := pricing.ParseOptionType(optType)
			if err != nil {
				return err
			}
			dc, err := daycount.Parse(dayCount)
			if err != nil {
				return err
			}
			settlementDate, err := time.Parse(dateLayout, settlement)
			if err != nil {
				return fmt.Errorf("parsing settlement date: %w", err)
			}
			maturityDate, err := time.Parse(dateLayout, maturity)
			if err != nil {
				return fmt.Errorf("parsing maturity date: %w", err)
			}

			printInputs(os.Stdout, typ, maturityDate, spot, strike, rate, dividend, vol, dc)

			proc := termstructure.NewProcess(
				market.NewSimpleQuote(spot),
				termstructure.NewFlatForward(settlementDate, dividend, dc),
				termstructure.NewFlatForward(settlementDate, rate, dc),
				termstructure.NewConstantVol(settlementDate, vol, dc),
				settlementDate,
				dc,
			)

			res, err := proc.PriceEuropean(typ, strike, maturityDate)
			if err != nil {
				return err
			}

			report.RenderTable(os.Stdout, []string{"method", "european"}, [][]report.Cell{
				{report.Text("Black-Scholes NPV"), report.Number(res.Price)},
				{report.Text("Delta"), report.Number(res.Delta)},
				{report.Text("Gamma"), report.Number(res.Gamma)},
				{report.Text("Vega"), report.Number(res.Vega)},
				{report.Text("Theta"), report.Number(res.Theta)},
				{report.Text("Rho"), report.Number(res.Rho)},
			})

			log.Infof("run completed in %v", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&optType, "type", "put", `option type: "call" or "put"`)
	cmd.Flags().Float64Var(&spot, "spot", 36, "underlying price")
	cmd.Flags().Float64Var(&strike, "strike", 40, "strike price")
	cmd.Flags().Float64Var(&rate, "rate", 0.06, "risk-free rate, continuously compounded")
	cmd.Flags().Float64Var(&dividend, "dividend", 0.0, "dividend yield, continuously compounded")
	cmd.Flags().Float64Var(&vol, "vol", 0.20, "annualized volatility")
	cmd.Flags().StringVar(&settlement, "settlement", "1998-05-17", "settlement date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&maturity, "maturity", "1999-05-17", "maturity date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&dayCount, "day-count", "act/365", "day-count convention (act/365, act/360, 30/360)")
	return cmd
}

// batchCmd prices every row of a scenario CSV and optionally writes the
// results to an output directory.
func batchCmd() *cobra.Command {
	var (
		file      string
		out       string
		valuation string
		dayCount  string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Price a CSV of option scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			dc, err := daycount.Parse(dayCount)
			if err != nil {
				return err
			}
			valuationDate, err := time.Parse(dateLayout, valuation)
			if err != nil {
				return fmt.Errorf("parsing valuation date: %w", err)
			}

			scenarios, err := market.LoadScenarios(file)
			if err != nil {
				return err
			}

			rows := make([]report.Row, 0, len(scenarios))
			tableRows := make([][]report.Cell, 0, len(scenarios))
			for _, sc := range scenarios {
				spec, err := sc.OptionSpec(valuationDate, dc)
				if err != nil {
					log.Errorf("skipping %s: %v", sc.Name, err)
					continue
				}
				res, err := pricing.PriceWithGreeks(spec)
				if err != nil {
					log.Errorf("skipping %s: %v", sc.Name, err)
					continue
				}
				row := report.Row{
					Name:   sc.Name,
					Method: "Black-Scholes",
					NPV:    res.Price,
					Delta:  res.Delta,
					Gamma:  res.Gamma,
					Vega:   res.Vega,
					Theta:  res.Theta,
					Rho:    res.Rho,
				}
				rows = append(rows, row)
				tableRows = append(tableRows, row.ResultCells())
			}
			if len(rows) == 0 {
				return fmt.Errorf("no scenarios priced")
			}

			report.RenderTable(os.Stdout, report.ResultHeader(), tableRows)

			if out != "" {
				if err := os.MkdirAll(out, 0755); err != nil {
					return fmt.Errorf("creating output dir %s: %w", out, err)
				}
				if err := report.WriteJSON(rows, out); err != nil {
					return err
				}
				if err := report.WriteCSV(rows, out); err != nil {
					return err
				}
				log.Infof("wrote results to %s", out)
			}

			log.Infof("[done] priced %d of %d scenarios in %v", len(rows), len(scenarios), time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "scenarios.csv", "scenario CSV file")
	cmd.Flags().StringVar(&out, "out", "", "output directory for results.csv / results.json")
	cmd.Flags().StringVar(&valuation, "valuation", time.Now().Format(dateLayout), "valuation date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&dayCount, "day-count", "act/365", "day-count convention (act/365, act/360, 30/360)")
	return cmd
}

// printInputs echoes the run parameters, mirroring the layout of the
// console demo this tool grew out of.
func printInputs(w io.Writer, typ pricing.OptionType, maturity time.Time,
	spot, strike, rate, dividend, vol float64, dc daycount.Convention) {
	fmt.Fprintf(w, "Option type = %v\n", typ)
	fmt.Fprintf(w, "Maturity = %s\n", maturity.Format(dateLayout))
	fmt.Fprintf(w, "Underlying price = %g\n", spot)
	fmt.Fprintf(w, "Strike = %g\n", strike)
	fmt.Fprintf(w, "Risk-free interest rate = %.4f %%\n", rate*100)
	fmt.Fprintf(w, "Dividend yield = %.4f %%\n", dividend*100)
	fmt.Fprintf(w, "Volatility = %.4f %%\n", vol*100)
	fmt.Fprintf(w, "Day counter = %v\n", dc)
	fmt.Fprintln(w)
}
