package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultComparisonAges are the retirement ages compared when a plan does not list its own.
var DefaultComparisonAges = []int{60, 62, 65, 67, 70}

// CompareRetirementAges projects the plan's growth input to each candidate retirement age, in the
// plan's own mode: a single deposit compounds yearly, a periodic plan keeps contributing at f.
// The row for the plan's retirement age therefore matches the plan's projected final balance.
// Ages not after currentAge yield a zero balance.
func CompareRetirementAges(input domain.GrowthInput, f Frequency, currentAge int, ages []int) []domain.RetirementAgeBalance {
	if len(ages) == 0 {
		ages = DefaultComparisonAges
	}
	out := make([]domain.RetirementAgeBalance, 0, len(ages))
	for _, age := range ages {
		row := domain.RetirementAgeBalance{Age: age, FinalBalance: decimal.Zero}
		if age > currentAge {
			row.HorizonYears = age - currentAge
			if input.Mode == domain.GrowthModeSingleDeposit {
				row.FinalBalance = ProjectSingleDeposit(input.InitialDeposit, input.AnnualRate, row.HorizonYears).FinalBalance
			} else {
				row.FinalBalance = ProjectPeriodicContributions(input.InitialDeposit, input.Contribution, input.AnnualRate, f, row.HorizonYears).FinalBalance
			}
		}
		out = append(out, row)
	}
	return out
}

// CompareRates projects the final balance under each annual rate. Single-deposit mode compounds
// yearly; periodic mode uses the closed-form future value at the given frequency.
func CompareRates(input domain.GrowthInput, f Frequency, years int, rates []decimal.Decimal) []domain.RateBalance {
	out := make([]domain.RateBalance, 0, len(rates))
	for _, r := range rates {
		var final decimal.Decimal
		if input.Mode == domain.GrowthModeSingleDeposit {
			final = input.InitialDeposit.Mul(GrowthFactor(r, years))
		} else {
			final = FutureValue(input.InitialDeposit, input.Contribution, r, f, years)
		}
		out = append(out, domain.RateBalance{AnnualRate: r, FinalBalance: final})
	}
	return out
}
