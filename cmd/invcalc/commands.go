package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPlanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <config.yaml>",
		Short: "Run every section of a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if cfg.Investor.Currency == "" {
				cfg.Investor.Currency = a.currency
			}
			results, err := a.engine.RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.render(results)
		},
	}
}

func newGrowthCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project a single deposit or a periodic contribution plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "deposit", "contribution", "rate")
			if err != nil {
				return err
			}
			mode, _ := cmd.Flags().GetString("mode")
			freq, _ := cmd.Flags().GetString("frequency")
			years, _ := cmd.Flags().GetInt("years")
			input := domain.GrowthInput{
				Mode:           domain.GrowthMode(mode),
				InitialDeposit: v["deposit"],
				Contribution:   v["contribution"],
				AnnualRate:     v["rate"],
				Frequency:      freq,
				HorizonYears:   years,
			}
			if err := config.ValidateGrowthInput(&input); err != nil {
				return err
			}
			series, err := a.engine.ProjectGrowth(input, years)
			if err != nil {
				return err
			}
			return a.render(&domain.PlanResult{GeneratedAt: time.Now(), Growth: series})
		},
	}
	f := cmd.Flags()
	f.String("mode", string(domain.GrowthModePeriodic), "single_deposit or periodic")
	f.String("deposit", "0", "initial deposit")
	f.String("contribution", "0", "contribution per period")
	f.String("rate", "", "annual effective rate, e.g. 0.12")
	f.String("frequency", "monthly", "contribution frequency")
	f.Int("years", 10, "horizon in years")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a plan's growth across retirement ages and rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "deposit", "contribution", "rate")
			if err != nil {
				return err
			}
			age, _ := cmd.Flags().GetInt("current-age")
			ages, _ := cmd.Flags().GetIntSlice("ages")
			rateStrs, _ := cmd.Flags().GetStringSlice("rates")
			freq, _ := cmd.Flags().GetString("frequency")
			years, _ := cmd.Flags().GetInt("years")

			if err := config.ValidateAge("current-age", age); err != nil {
				return err
			}
			if err := config.ValidateRate("rate", v["rate"]); err != nil {
				return err
			}
			input := domain.GrowthInput{
				Mode:           domain.GrowthModeSingleDeposit,
				InitialDeposit: v["deposit"],
				Contribution:   v["contribution"],
				AnnualRate:     v["rate"],
				Frequency:      freq,
			}
			if v["contribution"].IsPositive() {
				input.Mode = domain.GrowthModePeriodic
			}
			f, err := calculation.ParseFrequency(freq)
			if err != nil {
				return err
			}

			results := &domain.PlanResult{GeneratedAt: time.Now(), CurrentAge: age}
			results.RetirementAges = calculation.CompareRetirementAges(input, f, age, ages)

			if len(rateStrs) > 0 {
				for _, s := range rateStrs {
					r, err := parseRate(s)
					if err != nil {
						return err
					}
					input.ComparisonRates = append(input.ComparisonRates, r)
				}
				results.RateComparison = calculation.CompareRates(input, f, years, input.ComparisonRates)
			}
			return a.render(results)
		},
	}
	f := cmd.Flags()
	f.String("deposit", "0", "current capital")
	f.String("contribution", "0", "contribution per period; a positive value keeps contributing until each age")
	f.String("rate", "", "annual effective rate for the age comparison")
	f.Int("current-age", 30, "current age")
	f.IntSlice("ages", nil, "retirement ages to compare (default 60,62,65,67,70)")
	f.StringSlice("rates", nil, "annual rates to compare, e.g. 0.06,0.09,0.12")
	f.String("frequency", "monthly", "contribution frequency")
	f.Int("years", 10, "horizon in years for the rate comparison")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newPayoutCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Apply capital-gains tax and size a monthly or lump-sum retirement payout",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "capital", "contributed", "rate", "tax-rate")
			if err != nil {
				return err
			}
			jurisdiction, _ := cmd.Flags().GetString("jurisdiction")
			years, _ := cmd.Flags().GetInt("years")
			lumpSum, _ := cmd.Flags().GetBool("lump-sum")
			rate := v["rate"]
			input := domain.PayoutInput{
				Jurisdiction: domain.Jurisdiction(jurisdiction),
				Option:       domain.PayoutMonthly,
				AnnualRate:   &rate,
				HorizonYears: years,
			}
			if lumpSum {
				input.Option = domain.PayoutLumpSum
			} else if !cmd.Flags().Changed("rate") {
				return fmt.Errorf("--rate is required for a monthly payout")
			}
			if cmd.Flags().Changed("tax-rate") {
				tr := v["tax-rate"]
				input.TaxRate = &tr
			}
			if err := config.ValidatePayoutInput(&input); err != nil {
				return err
			}
			if err := config.ValidateNonNegative("capital", v["capital"]); err != nil {
				return err
			}
			if err := config.ValidateNonNegative("contributed", v["contributed"]); err != nil {
				return err
			}

			cfg := &domain.Configuration{Investor: domain.Investor{Currency: a.currency}, Payout: &input}
			taxRate, err := a.engine.ResolveTaxRate(cfg)
			if err != nil {
				return err
			}
			result := calculation.CalculatePayout(v["capital"], v["contributed"], taxRate, rate, input.Horizon())
			return a.render(&domain.PlanResult{GeneratedAt: time.Now(), Payout: &result})
		},
	}
	f := cmd.Flags()
	f.String("capital", "", "gross capital at retirement")
	f.String("contributed", "0", "capital contributed (deposit plus contributions)")
	f.String("rate", "", "annual effective rate during the payout phase; not needed with --lump-sum")
	f.String("tax-rate", "", "capital-gains tax rate; overrides --jurisdiction")
	f.String("jurisdiction", "", "domestic or foreign (default derived from --currency)")
	f.Int("years", 0, "payout horizon in years; 0 or >= 100 means perpetual")
	f.Bool("lump-sum", false, "withdraw the net capital at once instead of monthly")
	_ = cmd.MarkFlagRequired("capital")
	return cmd
}

func addBondFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "bond name")
	f.String("face", "", "face value")
	f.String("coupon", "", "annual coupon rate")
	f.String("frequency", "semiannual", "coupon frequency")
	f.String("term", "", "term in years")
	f.String("rate", "", "annual discount rate")
	_ = cmd.MarkFlagRequired("face")
	_ = cmd.MarkFlagRequired("coupon")
	_ = cmd.MarkFlagRequired("term")
}

func bondInputFromFlags(cmd *cobra.Command) (domain.BondInput, error) {
	v, err := decimalFlags(cmd, "face", "coupon", "term", "rate")
	if err != nil {
		return domain.BondInput{}, err
	}
	name, _ := cmd.Flags().GetString("name")
	freq, _ := cmd.Flags().GetString("frequency")
	input := domain.BondInput{
		Name:               name,
		FaceValue:          v["face"],
		AnnualCouponRate:   v["coupon"],
		Frequency:          freq,
		TermYears:          v["term"],
		AnnualDiscountRate: v["rate"],
	}
	return input, config.ValidateBondInput(&input)
}

func newBondCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bond",
		Short: "Price a fixed-coupon bond and print its cash-flow schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := bondInputFromFlags(cmd)
			if err != nil {
				return err
			}
			report, err := a.engine.ValueBond(input, nil)
			if err != nil {
				return err
			}
			return a.render(&domain.PlanResult{GeneratedAt: time.Now(), Bonds: []domain.BondReport{*report}})
		},
	}
	addBondFlags(cmd)
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newSweepCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Reprice a bond across a range of discount rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := bondInputFromFlags(cmd)
			if err != nil {
				return err
			}
			spread, err := decimalFlag(cmd, "spread")
			if err != nil {
				return err
			}
			points, _ := cmd.Flags().GetInt("points")
			sweep := &domain.SweepInput{Spread: spread, Points: points}
			if err := config.ValidateSweepInput(sweep); err != nil {
				return err
			}
			report, err := a.engine.ValueBond(input, sweep)
			if err != nil {
				return err
			}
			return a.render(&domain.PlanResult{GeneratedAt: time.Now(), Bonds: []domain.BondReport{*report}})
		},
	}
	addBondFlags(cmd)
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().String("spread", calculation.DefaultSweepSpread.String(), "rate spread around --rate")
	cmd.Flags().Int("points", calculation.DefaultSweepPoints, "number of sweep points")
	return cmd
}

func newYieldCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yield",
		Short: "Solve for the discount rate that prices a bond at a target price",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := bondInputFromFlags(cmd)
			if err != nil {
				return err
			}
			price, err := decimalFlag(cmd, "price")
			if err != nil {
				return err
			}
			input.TargetPrice = &price
			if err := config.ValidateBondInput(&input); err != nil {
				return err
			}
			report, err := a.engine.ValueBond(input, nil)
			if err != nil {
				return err
			}
			// Reprice at the solved rate so the schedule matches the target.
			input.AnnualDiscountRate = report.Yield.AnnualDiscountRate
			repriced, err := a.engine.ValueBond(input, nil)
			if err != nil {
				return err
			}
			return a.render(&domain.PlanResult{GeneratedAt: time.Now(), Bonds: []domain.BondReport{*repriced}})
		},
	}
	addBondFlags(cmd)
	cmd.Flags().String("price", "", "target price")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newExampleConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Example configuration written to %s\n", path)
			return nil
		},
	}
}

func parseRate(s string) (decimal.Decimal, error) {
	r, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q", s)
	}
	return r, config.ValidateRate("rates", r)
}
