package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	format    string
	outputDir string
	logLevel  string
	logJSON   bool
	currency  string

	engine *calculation.CalculationEngine
	out    io.Writer
	errOut io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{engine: calculation.NewCalculationEngine(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "invcalc",
		Short:         "Investment calculator: growth projections, bond pricing and retirement payouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.format, "format", "f", "", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)")
	pf.StringVarP(&a.outputDir, "output-dir", "o", "", "directory for report files")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	pf.StringVar(&a.currency, "currency", "", "ISO currency for money formatting (PEN, USD, EUR)")

	root.AddCommand(
		newPlanCommand(a),
		newGrowthCommand(a),
		newCompareCommand(a),
		newPayoutCommand(a),
		newBondCommand(a),
		newSweepCommand(a),
		newYieldCommand(a),
		newExampleConfigCommand(a),
	)
	return root
}

// setup merges .env / environment settings under the command-line flags and wires logging.
func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.LoadEnvironment()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	if !cmd.Flags().Changed("format") {
		a.format = env.Format
	}
	if !cmd.Flags().Changed("output-dir") {
		a.outputDir = env.OutputDir
	}
	if !cmd.Flags().Changed("log-level") {
		a.logLevel = env.LogLevel
	}
	if !cmd.Flags().Changed("log-json") {
		a.logJSON = env.LogJSON
	}
	if !cmd.Flags().Changed("currency") {
		a.currency = env.Currency
	}

	logger := logging.New(a.errOut, a.logLevel, a.logJSON)
	a.engine.SetLogger(logging.NewSlogAdapter(logger))
	if env.DotEnvLoaded {
		logger.Debug("loaded .env file")
	}
	return nil
}

// render prints console formats to stdout and writes every other format to a report file.
func (a *app) render(results *domain.PlanResult) error {
	if results.Currency == "" {
		results.Currency = a.currency
	}
	name := output.NormalizeFormatName(a.format)
	if name == "console" || name == "console-lite" {
		data, err := output.GetFormatterByName(name).Format(results)
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		return err
	}

	paths, err := output.GenerateReport(results, a.format, a.outputDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(a.out, "Report written to %s\n", p)
	}
	return nil
}

// decimalFlag parses a string flag as an exact decimal.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return decimal.Zero, err
	}
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: invalid number %q", name, s)
	}
	return d, nil
}

// decimalFlags parses several string flags at once.
func decimalFlags(cmd *cobra.Command, names ...string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(names))
	for _, n := range names {
		d, err := decimalFlag(cmd, n)
		if err != nil {
			return nil, err
		}
		out[n] = d
	}
	return out, nil
}
