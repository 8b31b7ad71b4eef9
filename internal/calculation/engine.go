package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/rpgo/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates a full plan: accumulation, tax, payout and bond valuation.
// Every step is a pure function of the configuration; the engine only wires results together.
type CalculationEngine struct {
	TaxPolicy *TaxPolicy
	Logger    logging.Logger
	// Now is the clock used to resolve ages from birth dates and stamp results.
	Now func() time.Time
}

// NewCalculationEngine creates a new calculation engine with the default tax policy.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxPolicy: NewDefaultTaxPolicy(),
		Logger:    logging.Nop{},
		Now:       time.Now,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l logging.Logger) {
	if l == nil {
		ce.Logger = logging.Nop{}
		return
	}
	ce.Logger = l
}

// CurrentAge resolves the investor's age, preferring birth_date over current_age.
func (ce *CalculationEngine) CurrentAge(inv domain.Investor) int {
	if inv.BirthDate != nil && !inv.BirthDate.IsZero() {
		return dateutil.Age(*inv.BirthDate, ce.Now())
	}
	return inv.CurrentAge
}

// HorizonYears is the accumulation horizon: an explicit override or retirement age minus current age.
func (ce *CalculationEngine) HorizonYears(cfg *domain.Configuration) int {
	if cfg.Growth != nil && cfg.Growth.HorizonYears > 0 {
		return cfg.Growth.HorizonYears
	}
	return dateutil.YearsBetweenAges(ce.CurrentAge(cfg.Investor), cfg.Investor.RetirementAge)
}

// ProjectGrowth runs the accumulation phase for a growth input.
func (ce *CalculationEngine) ProjectGrowth(input domain.GrowthInput, years int) (*domain.GrowthSeries, error) {
	switch input.Mode {
	case domain.GrowthModeSingleDeposit:
		return ProjectSingleDeposit(input.InitialDeposit, input.AnnualRate, years), nil
	case domain.GrowthModePeriodic, "":
		f, err := ParseFrequency(input.Frequency)
		if err != nil {
			return nil, fmt.Errorf("growth: %w", err)
		}
		return ProjectPeriodicContributions(input.InitialDeposit, input.Contribution, input.AnnualRate, f, years), nil
	default:
		return nil, fmt.Errorf("growth: unsupported mode %q", input.Mode)
	}
}

// ValueBond prices one bond, sweeps its sensitivity when requested and solves for a target price.
func (ce *CalculationEngine) ValueBond(input domain.BondInput, sweep *domain.SweepInput) (*domain.BondReport, error) {
	f, err := ParseFrequency(input.Frequency)
	if err != nil {
		return nil, fmt.Errorf("bond %q: %w", input.Name, err)
	}

	valuation := PriceBond(input.FaceValue, input.AnnualCouponRate, f, input.TermYears, input.AnnualDiscountRate)
	valuation.Name = input.Name
	report := &domain.BondReport{Valuation: *valuation}
	ce.Logger.Debugf("bond %s: %d periods, coupon %s, pv %s (%s)", input.Name, valuation.NumPeriods,
		valuation.CouponPerPeriod.StringFixed(2), valuation.PresentValue.StringFixed(2), valuation.Classification)

	if sweep != nil {
		spread := sweep.Spread
		if spread.IsZero() {
			spread = DefaultSweepSpread
		}
		points := sweep.Points
		if points <= 0 {
			points = DefaultSweepPoints
		}
		rates := SensitivityRates(input.AnnualDiscountRate, spread, points)
		report.Sensitivity = SweepDiscountRates(input.FaceValue, input.AnnualCouponRate, f, input.TermYears, rates)
	}

	if input.TargetPrice != nil {
		sol, err := SolveDiscountRate(input.FaceValue, input.AnnualCouponRate, f, input.TermYears, *input.TargetPrice)
		if err != nil {
			return nil, fmt.Errorf("bond %q: %w", input.Name, err)
		}
		report.Yield = sol
	}
	return report, nil
}

// ResolveTaxRate returns the explicit tax rate, or the policy rate for the plan's jurisdiction.
// An empty jurisdiction is derived from the investor's currency.
func (ce *CalculationEngine) ResolveTaxRate(cfg *domain.Configuration) (decimal.Decimal, error) {
	if cfg.Payout.TaxRate != nil {
		return *cfg.Payout.TaxRate, nil
	}
	j := cfg.Payout.Jurisdiction
	if j == "" {
		j = JurisdictionForCurrency(cfg.Investor.Currency)
	}
	return ce.TaxPolicy.RateFor(j)
}

// RunPlan calculates every section present in the configuration.
// The growth series' final balance and contributed capital feed the payout calculation explicitly.
func (ce *CalculationEngine) RunPlan(ctx context.Context, cfg *domain.Configuration) (*domain.PlanResult, error) {
	result := &domain.PlanResult{
		Name:        cfg.Investor.Name,
		Currency:    cfg.Investor.Currency,
		GeneratedAt: ce.Now(),
		Assumptions: cfg.GenerateAssumptions(),
	}
	result.CurrentAge = ce.CurrentAge(cfg.Investor)
	result.RetirementAge = cfg.Investor.RetirementAge
	if cfg.Investor.BirthDate != nil && !cfg.Investor.BirthDate.IsZero() {
		rd := dateutil.RetirementDate(*cfg.Investor.BirthDate, cfg.Investor.RetirementAge)
		result.RetirementDate = &rd
	}

	if cfg.Growth != nil {
		years := ce.HorizonYears(cfg)
		series, err := ce.ProjectGrowth(*cfg.Growth, years)
		if err != nil {
			return nil, err
		}
		result.Growth = series
		ce.Logger.Infof("growth: %d years, final balance %s, interest %s", years,
			series.FinalBalance.StringFixed(2), series.TotalInterest.StringFixed(2))

		f, ok := LookupFrequency(cfg.Growth.Frequency)
		if !ok && cfg.Growth.Mode != domain.GrowthModeSingleDeposit {
			ce.Logger.Warnf("comparisons: unknown frequency %q, using %s", cfg.Growth.Frequency, f)
		}
		result.RetirementAges = CompareRetirementAges(*cfg.Growth, f, result.CurrentAge, cfg.Growth.ComparisonAges)
		if len(cfg.Growth.ComparisonRates) > 0 {
			result.RateComparison = CompareRates(*cfg.Growth, f, years, cfg.Growth.ComparisonRates)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Payout != nil {
		if result.Growth == nil {
			return nil, fmt.Errorf("payout requires a growth section to size capital")
		}
		taxRate, err := ce.ResolveTaxRate(cfg)
		if err != nil {
			return nil, fmt.Errorf("payout: %w", err)
		}
		payout := CalculatePayout(result.Growth.FinalBalance, result.Growth.ContributedCapital(), taxRate,
			cfg.PayoutRate(), cfg.Payout.Horizon())
		result.Payout = &payout
		ce.Logger.Infof("payout: tax %s, net capital %s, monthly %s (%s)", payout.Tax.TaxAmount.StringFixed(2),
			payout.Tax.NetCapital.StringFixed(2), payout.Plan.MonthlyPayout.StringFixed(2), payout.Plan.Horizon)
	}

	for _, b := range cfg.Bonds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, err := ce.ValueBond(b, cfg.Sweep)
		if err != nil {
			return nil, err
		}
		result.Bonds = append(result.Bonds, *report)
	}

	return result, nil
}
