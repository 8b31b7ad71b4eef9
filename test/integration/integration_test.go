package integration

import (
	"context"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

func runExample(t *testing.T) (*domain.Configuration, *domain.PlanResult) {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	return cfg, results
}

func TestEndToEndCalculation(t *testing.T) {
	_, results := runExample(t)

	assert.Equal(t, "Example Investor", results.Name)
	assert.Equal(t, "PEN", results.Currency)

	// Accumulation: 10 years of monthly contributions.
	require.NotNil(t, results.Growth)
	assert.Len(t, results.Growth.Periods, 121)
	assert.True(t, results.Growth.TotalContributed.Equal(decimal.NewFromInt(24000)))
	last := results.Growth.Periods[len(results.Growth.Periods)-1]
	assert.True(t, last.ClosingBalance.Equal(results.Growth.FinalBalance))

	// The growth result feeds the payout phase.
	require.NotNil(t, results.Payout)
	assert.True(t, results.Payout.Tax.GrossCapital.Equal(results.Growth.FinalBalance))
	assert.True(t, results.Payout.Tax.ContributedCapital.Equal(decimal.NewFromInt(27000)))
	assert.True(t, results.Payout.Plan.MonthlyPayout.IsPositive())
	assert.True(t, results.Payout.Plan.ResidualCapital.Abs().LessThan(decimal.NewFromFloat(0.01)))

	require.Len(t, results.RetirementAges, 3)
	assert.Len(t, results.RateComparison, 3)
	// The row for the retirement age keeps contributing like the plan itself.
	assert.Equal(t, 40, results.RetirementAges[1].Age)
	assert.True(t, results.RetirementAges[1].FinalBalance.Equal(results.Growth.FinalBalance))

	require.Len(t, results.Bonds, 2)
	corporate := results.Bonds[0]
	assert.Equal(t, domain.BondAtDiscount, corporate.Valuation.Classification)
	assert.Len(t, corporate.Sensitivity, 11)
	require.NotNil(t, corporate.Yield)
	assert.InDelta(t, 0.12, corporate.Yield.AnnualDiscountRate.InexactFloat64(), 1e-5)

	sovereign := results.Bonds[1]
	assert.Equal(t, domain.BondAtPremium, sovereign.Valuation.Classification)
	assert.Nil(t, sovereign.Yield)
}

func TestDirectAndDecomposedPricingAgree(t *testing.T) {
	cfg, results := runExample(t)
	require.Len(t, results.Bonds, len(cfg.Bonds))

	for k, in := range cfg.Bonds {
		f, err := calculation.ParseFrequency(in.Frequency)
		require.NoError(t, err)
		for _, p := range results.Bonds[k].Sensitivity {
			total, _, _ := calculation.PriceBondDecomposed(in.FaceValue, in.AnnualCouponRate, f, in.TermYears, p.AnnualDiscountRate)
			assert.InDelta(t, p.PresentValue.InexactFloat64(), total.InexactFloat64(), 1e-6,
				"%s at %s", in.Name, p.AnnualDiscountRate)
		}
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Bonds[0].FaceValue = decimal.Zero
	err = parser.ValidateConfiguration(cfg)
	assert.ErrorIs(t, err, config.ErrValidation)
	assert.ErrorContains(t, err, "bond 0")
}

func TestExampleConfigurationRuns(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(cfg))

	results, err := calculation.NewCalculationEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, results.Growth)
	assert.NotNil(t, results.Payout)
	assert.NotEmpty(t, results.Bonds)
}
