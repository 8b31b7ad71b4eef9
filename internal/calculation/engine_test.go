package calculation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type recordingLogger struct{ lines []string }

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("ERROR", format, args...) }

func (r *recordingLogger) add(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func testEngine() *CalculationEngine {
	ce := NewCalculationEngine()
	ce.Now = func() time.Time { return fixedNow }
	return ce
}

func testPlan() *domain.Configuration {
	target := decimal.NewFromFloat(9295.74)
	payoutRate := decimal.NewFromFloat(0.08)
	return &domain.Configuration{
		Investor: domain.Investor{Name: "Test", CurrentAge: 30, RetirementAge: 32, Currency: "PEN"},
		Growth: &domain.GrowthInput{
			Mode:            domain.GrowthModePeriodic,
			InitialDeposit:  decimal.NewFromInt(3000),
			Contribution:    decimal.NewFromInt(200),
			AnnualRate:      decimal.NewFromFloat(0.12),
			Frequency:       "monthly",
			ComparisonRates: []decimal.Decimal{decimal.NewFromFloat(0.06), decimal.NewFromFloat(0.12)},
		},
		Payout: &domain.PayoutInput{
			AnnualRate:   &payoutRate,
			HorizonYears: 25,
		},
		Bonds: []domain.BondInput{{
			Name:               "Corporate 5Y",
			FaceValue:          decimal.NewFromInt(10000),
			AnnualCouponRate:   decimal.NewFromFloat(0.10),
			Frequency:          "semiannual",
			TermYears:          decimal.NewFromInt(5),
			AnnualDiscountRate: decimal.NewFromFloat(0.12),
			TargetPrice:        &target,
		}},
		Sweep: &domain.SweepInput{Spread: decimal.NewFromFloat(0.05), Points: 5},
	}
}

func TestRunPlan(t *testing.T) {
	ce := testEngine()
	log := &recordingLogger{}
	ce.SetLogger(log)

	res, err := ce.RunPlan(context.Background(), testPlan())
	require.NoError(t, err)

	assert.Equal(t, "Test", res.Name)
	assert.Equal(t, fixedNow, res.GeneratedAt)
	assert.NotEmpty(t, res.Assumptions)

	require.NotNil(t, res.Growth)
	near(t, 9125.3151, res.Growth.FinalBalance, 1e-4)
	assert.Len(t, res.RetirementAges, len(DefaultComparisonAges))
	require.Len(t, res.RateComparison, 2)
	near(t, 9125.3151, res.RateComparison[1].FinalBalance, 1e-3)

	require.NotNil(t, res.Payout)
	assert.True(t, res.Payout.Tax.GrossCapital.Equal(res.Growth.FinalBalance))
	assert.True(t, res.Payout.Tax.ContributedCapital.Equal(decimal.NewFromInt(7800)))
	assert.True(t, res.Payout.Tax.TaxRate.Equal(decimal.NewFromFloat(0.05)), "PEN plans are taxed as domestic")
	assert.Equal(t, 300, res.Payout.Plan.Horizon.Months())

	require.Len(t, res.Bonds, 1)
	bond := res.Bonds[0]
	assert.Equal(t, "Corporate 5Y", bond.Valuation.Name)
	near(t, 9295.74, bond.Valuation.PresentValue, 0.01)
	assert.Len(t, bond.Sensitivity, 5)
	require.NotNil(t, bond.Yield)
	near(t, 0.12, bond.Yield.AnnualDiscountRate, 1e-5)

	assert.NotEmpty(t, log.lines)
}

func TestRunPlan_RetirementAgeRowMatchesProjection(t *testing.T) {
	cfg := testPlan()
	cfg.Investor.RetirementAge = 65
	cfg.Growth.ComparisonAges = []int{60, 65, 70}

	res, err := testEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.RetirementAges, 3)

	row := res.RetirementAges[1]
	assert.Equal(t, 65, row.Age)
	assert.Equal(t, 35, row.HorizonYears)
	assert.True(t, row.FinalBalance.Equal(res.Growth.FinalBalance),
		"age 65 row %s, projected %s", row.FinalBalance, res.Growth.FinalBalance)
	assert.True(t, res.RetirementAges[0].FinalBalance.LessThan(row.FinalBalance))
	assert.True(t, res.RetirementAges[2].FinalBalance.GreaterThan(row.FinalBalance))
}

func TestRunPlan_SingleDepositRetirementAgeRow(t *testing.T) {
	cfg := testPlan()
	cfg.Growth.Mode = domain.GrowthModeSingleDeposit
	cfg.Growth.ComparisonAges = []int{32}

	res, err := testEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.RetirementAges, 1)
	assert.True(t, res.RetirementAges[0].FinalBalance.Equal(res.Growth.FinalBalance))
}

func TestRunPlan_DefaultPayoutRate(t *testing.T) {
	cfg := testPlan()
	cfg.Payout.AnnualRate = nil

	res, err := testEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, res.Payout.Plan.AnnualRate.Equal(decimal.NewFromFloat(0.06)), "got %s", res.Payout.Plan.AnnualRate)
	assert.True(t, res.Payout.Plan.MonthlyPayout.IsPositive())
}

func TestRunPlan_LumpSum(t *testing.T) {
	cfg := testPlan()
	cfg.Payout.Option = domain.PayoutLumpSum

	res, err := testEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	plan := res.Payout.Plan
	assert.True(t, plan.Horizon.IsLumpSum())
	assert.True(t, plan.FinalPayout.Equal(res.Payout.Tax.NetCapital))
	assert.True(t, plan.ResidualCapital.IsZero())
}

func TestRunPlan_BondsOnly(t *testing.T) {
	cfg := testPlan()
	cfg.Growth, cfg.Payout, cfg.Sweep = nil, nil, nil

	res, err := testEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, res.Growth)
	assert.Nil(t, res.Payout)
	require.Len(t, res.Bonds, 1)
	assert.Empty(t, res.Bonds[0].Sensitivity)
}

func TestRunPlan_PayoutWithoutGrowth(t *testing.T) {
	cfg := testPlan()
	cfg.Growth = nil
	_, err := testEngine().RunPlan(context.Background(), cfg)
	assert.ErrorContains(t, err, "payout requires a growth section")
}

func TestRunPlan_UnknownBondFrequency(t *testing.T) {
	cfg := testPlan()
	cfg.Bonds[0].Frequency = "weekly"
	_, err := testEngine().RunPlan(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownFrequency)
	assert.ErrorContains(t, err, "Corporate 5Y")
}

func TestRunPlan_UnreachableTarget(t *testing.T) {
	cfg := testPlan()
	target := decimal.NewFromInt(50000)
	cfg.Bonds[0].TargetPrice = &target
	_, err := testEngine().RunPlan(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrTargetOutOfRange)
}

func TestRunPlan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testEngine().RunPlan(ctx, testPlan())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveTaxRate(t *testing.T) {
	ce := testEngine()
	explicit := decimal.NewFromFloat(0.1)

	tests := []struct {
		name         string
		currency     string
		jurisdiction domain.Jurisdiction
		taxRate      *decimal.Decimal
		want         float64
	}{
		{"explicit rate wins", "PEN", domain.JurisdictionForeign, &explicit, 0.1},
		{"domestic", "USD", domain.JurisdictionDomestic, nil, 0.05},
		{"foreign", "PEN", domain.JurisdictionForeign, nil, 0.295},
		{"derived from PEN", "PEN", "", nil, 0.05},
		{"derived from USD", "USD", "", nil, 0.295},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.Configuration{
				Investor: domain.Investor{Currency: tt.currency},
				Payout:   &domain.PayoutInput{Jurisdiction: tt.jurisdiction, TaxRate: tt.taxRate},
			}
			rate, err := ce.ResolveTaxRate(cfg)
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.NewFromFloat(tt.want)), "got %s", rate)
		})
	}

	_, err := ce.ResolveTaxRate(&domain.Configuration{Payout: &domain.PayoutInput{Jurisdiction: "offshore"}})
	assert.Error(t, err)
}

func TestCurrentAgeAndHorizon(t *testing.T) {
	ce := testEngine()
	birth := time.Date(1990, 9, 15, 0, 0, 0, 0, time.UTC)
	cfg := &domain.Configuration{
		Investor: domain.Investor{CurrentAge: 50, BirthDate: &birth, RetirementAge: 65},
		Growth:   &domain.GrowthInput{},
	}

	assert.Equal(t, 34, ce.CurrentAge(cfg.Investor), "birth date takes precedence")
	assert.Equal(t, 31, ce.HorizonYears(cfg))

	cfg.Growth.HorizonYears = 10
	assert.Equal(t, 10, ce.HorizonYears(cfg))
}

func TestProjectGrowth_Modes(t *testing.T) {
	ce := testEngine()
	_, err := ce.ProjectGrowth(domain.GrowthInput{Mode: "lump"}, 5)
	assert.ErrorContains(t, err, "unsupported mode")

	_, err = ce.ProjectGrowth(domain.GrowthInput{Mode: domain.GrowthModePeriodic, Frequency: "daily"}, 5)
	assert.ErrorIs(t, err, ErrUnknownFrequency)

	series, err := ce.ProjectGrowth(domain.GrowthInput{
		Mode:           domain.GrowthModeSingleDeposit,
		InitialDeposit: decimal.NewFromInt(10000),
		AnnualRate:     decimal.NewFromFloat(0.10),
	}, 5)
	require.NoError(t, err)
	assert.True(t, series.FinalBalance.Equal(decimal.NewFromFloat(16105.1)))
}

func TestSetLoggerNil(t *testing.T) {
	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	assert.IsType(t, logging.Nop{}, ce.Logger)
}
