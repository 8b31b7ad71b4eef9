package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyCapitalGainsTax taxes only the gain over contributed capital. Losses are not taxed.
func ApplyCapitalGainsTax(grossCapital, contributedCapital, taxRate decimal.Decimal) domain.TaxResult {
	gain := grossCapital.Sub(contributedCapital)
	taxable := decimal.Max(gain, decimal.Zero)
	tax := taxable.Mul(taxRate)
	if tax.IsNegative() {
		tax = decimal.Zero
	}
	return domain.TaxResult{
		GrossCapital:       grossCapital,
		ContributedCapital: contributedCapital,
		TaxableGain:        taxable,
		TaxRate:            taxRate,
		TaxAmount:          tax,
		NetCapital:         grossCapital.Sub(tax),
	}
}

// MonthlyPayout derives a sustainable monthly payout from net capital.
//
// Perpetual: P = C * r, principal is never consumed.
// Fixed term of n months: P = C * r(1+r)^n / ((1+r)^n - 1), or C / n when r == 0. At r == 0 the final
// payment takes whatever C / n left over, so the payments sum to C exactly.
// Lump sum: C is paid once and nothing remains.
func MonthlyPayout(netCapital, annualRate decimal.Decimal, horizon domain.PayoutHorizon) domain.PayoutPlan {
	rate := PeriodicRate(annualRate, Monthly)
	plan := domain.PayoutPlan{
		NetCapital:   netCapital,
		AnnualRate:   annualRate,
		PeriodicRate: rate,
		Horizon:      horizon,
	}

	switch {
	case horizon.IsLumpSum():
		plan.FinalPayout = netCapital
		plan.TotalPaidOut = netCapital
		plan.ResidualCapital = decimal.Zero
		return plan
	case horizon.IsPerpetual():
		plan.MonthlyPayout = netCapital.Mul(rate)
		plan.ResidualCapital = netCapital
		return plan
	}

	n := horizon.Months()
	months := decimal.NewFromInt(int64(n))
	if rate.IsPositive() {
		growth := GrowthFactor(rate, n)
		factor := rate.Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
		plan.MonthlyPayout = netCapital.Mul(factor)
		plan.FinalPayout = plan.MonthlyPayout
	} else {
		plan.MonthlyPayout = netCapital.Div(months)
		plan.FinalPayout = netCapital.Sub(plan.MonthlyPayout.Mul(decimal.NewFromInt(int64(n - 1))))
	}
	plan.TotalPaidOut = plan.MonthlyPayout.Mul(decimal.NewFromInt(int64(n - 1))).Add(plan.FinalPayout)
	plan.ResidualCapital = RemainingCapital(plan, n)
	return plan
}

// RemainingCapital replays a plan month by month (book interest, then pay out) and returns the balance
// left after the given number of months. Fixed-term plans end near zero; perpetual plans stay at net capital.
// Interest is rounded as it is booked; payments are taken as they are.
func RemainingCapital(plan domain.PayoutPlan, months int) decimal.Decimal {
	if plan.Horizon.IsLumpSum() {
		return plan.NetCapital.Sub(plan.FinalPayout)
	}
	balance := plan.NetCapital
	last := plan.Horizon.Months() - 1
	for m := 0; m < months; m++ {
		payment := plan.MonthlyPayout
		if m == last {
			payment = plan.FinalPayout
		}
		interest := balance.Mul(plan.PeriodicRate).Round(interestPrecision)
		balance = balance.Add(interest).Sub(payment)
	}
	return balance
}

// CalculatePayout applies the capital-gains tax and then sizes the monthly payout from what remains.
func CalculatePayout(grossCapital, contributedCapital, taxRate, annualRate decimal.Decimal, horizon domain.PayoutHorizon) domain.PayoutResult {
	tax := ApplyCapitalGainsTax(grossCapital, contributedCapital, taxRate)
	return domain.PayoutResult{
		Tax:  tax,
		Plan: MonthlyPayout(tax.NetCapital, annualRate, horizon),
	}
}
