package output

import (
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestPlan() *domain.PlanResult {
	d := decimal.NewFromFloat
	growth := calculation.ProjectPeriodicContributions(d(3000), d(200), d(0.12), calculation.Monthly, 2)
	payout := calculation.CalculatePayout(growth.FinalBalance, growth.ContributedCapital(), d(0.05), d(0.08), domain.FixedTerm(300))

	valuation := calculation.PriceBond(d(10000), d(0.10), calculation.Semiannual, d(5), d(0.12))
	valuation.Name = "Corporate 5Y"
	rates := calculation.SensitivityRates(d(0.12), d(0.05), 5)
	sweep := calculation.SweepDiscountRates(d(10000), d(0.10), calculation.Semiannual, d(5), rates)

	retire := time.Date(2060, 3, 15, 0, 0, 0, 0, time.UTC)
	return &domain.PlanResult{
		Name:           "Test Investor",
		Currency:       "USD",
		GeneratedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentAge:     30,
		RetirementAge:  65,
		RetirementDate: &retire,
		Growth:         growth,
		RetirementAges: []domain.RetirementAgeBalance{
			{Age: 60, HorizonYears: 30, FinalBalance: d(89879.77)},
			{Age: 65, HorizonYears: 35, FinalBalance: d(158398.21)},
		},
		RateComparison: []domain.RateBalance{
			{AnnualRate: d(0.06), FinalBalance: d(8460.12)},
			{AnnualRate: d(0.12), FinalBalance: growth.FinalBalance},
		},
		Payout: &payout,
		Bonds: []domain.BondReport{
			{Valuation: *valuation, Sensitivity: sweep},
		},
	}
}
