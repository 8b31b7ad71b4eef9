package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// interestPrecision is the scale each period's interest is rounded to before it is booked.
// Balances are sums of booked figures, so conservation holds exactly.
const interestPrecision int32 = 10

// ProjectSingleDeposit grows one deposit at the annual effective rate for each whole year
// 0..years: balance(t) = deposit * (1 + rate)^t.
func ProjectSingleDeposit(initialDeposit, annualRate decimal.Decimal, years int) *domain.GrowthSeries {
	if years < 0 {
		years = 0
	}
	series := &domain.GrowthSeries{
		Mode:           domain.GrowthModeSingleDeposit,
		Frequency:      Annual.String(),
		PeriodsPerYear: Annual.PeriodsPerYear(),
		PeriodicRate:   annualRate,
		AnnualRate:     annualRate,
		InitialDeposit: initialDeposit,
		Periods:        make([]domain.GrowthPeriod, 0, years+1),
	}

	factor := decimal.NewFromInt(1)
	onePlusRate := decimal.NewFromInt(1).Add(annualRate)
	for t := 0; t <= years; t++ {
		if t > 0 {
			factor = factor.Mul(onePlusRate).Round(ratePrecision)
		}
		balance := initialDeposit.Mul(factor).Round(interestPrecision)
		interest := balance.Sub(initialDeposit)
		series.Periods = append(series.Periods, domain.GrowthPeriod{
			PeriodIndex:             t,
			OpeningBalance:          initialDeposit,
			Contribution:            decimal.Zero,
			InterestEarned:          interest,
			ClosingBalance:          balance,
			CumulativeContributions: decimal.Zero,
			CumulativeInterest:      interest,
		})
	}

	final := series.Periods[len(series.Periods)-1]
	series.FinalBalance = final.ClosingBalance
	series.TotalInterest = final.CumulativeInterest
	series.TotalContributed = decimal.Zero
	return series
}

// ProjectPeriodicContributions simulates an account that earns the periodic equivalent of
// annualRate and receives a fixed contribution at the end of every period.
//
// Period 0 holds only the initial deposit. Each later period books
// interest = opening * i, then closing = opening + interest + contribution.
func ProjectPeriodicContributions(initialDeposit, contribution, annualRate decimal.Decimal, f Frequency, years int) *domain.GrowthSeries {
	if years < 0 {
		years = 0
	}
	rate := PeriodicRate(annualRate, f)
	totalPeriods := years * f.PeriodsPerYear()

	series := &domain.GrowthSeries{
		Mode:           domain.GrowthModePeriodic,
		Frequency:      f.String(),
		PeriodsPerYear: f.PeriodsPerYear(),
		PeriodicRate:   rate,
		AnnualRate:     annualRate,
		InitialDeposit: initialDeposit,
		Periods:        make([]domain.GrowthPeriod, 0, totalPeriods+1),
	}

	series.Periods = append(series.Periods, domain.GrowthPeriod{
		PeriodIndex:             0,
		OpeningBalance:          initialDeposit,
		Contribution:            decimal.Zero,
		InterestEarned:          decimal.Zero,
		ClosingBalance:          initialDeposit,
		CumulativeContributions: decimal.Zero,
		CumulativeInterest:      decimal.Zero,
	})

	balance := initialDeposit
	totalContributed := decimal.Zero
	totalInterest := decimal.Zero
	for p := 1; p <= totalPeriods; p++ {
		opening := balance
		interest := opening.Mul(rate).Round(interestPrecision)
		balance = opening.Add(interest).Add(contribution)
		totalContributed = totalContributed.Add(contribution)
		totalInterest = totalInterest.Add(interest)

		series.Periods = append(series.Periods, domain.GrowthPeriod{
			PeriodIndex:             p,
			OpeningBalance:          opening,
			Contribution:            contribution,
			InterestEarned:          interest,
			ClosingBalance:          balance,
			CumulativeContributions: totalContributed,
			CumulativeInterest:      totalInterest,
		})
	}

	series.FinalBalance = balance
	series.TotalContributed = totalContributed
	series.TotalInterest = totalInterest
	return series
}

// FutureValue is the closed form of ProjectPeriodicContributions' final balance:
//
//	FV = P(1+i)^n + c((1+i)^n - 1)/i,   or P + c*n when i == 0.
func FutureValue(initialDeposit, contribution, annualRate decimal.Decimal, f Frequency, years int) decimal.Decimal {
	rate := PeriodicRate(annualRate, f)
	n := years * f.PeriodsPerYear()
	if n <= 0 {
		return initialDeposit
	}
	if rate.IsZero() {
		return initialDeposit.Add(contribution.Mul(decimal.NewFromInt(int64(n))))
	}
	factor := GrowthFactor(rate, n)
	annuity := contribution.Mul(factor.Sub(decimal.NewFromInt(1))).Div(rate)
	return initialDeposit.Mul(factor).Add(annuity)
}
