package domain

import (
	"github.com/shopspring/decimal"
)

// GrowthMode selects how a portfolio accumulates.
type GrowthMode string

const (
	// GrowthModeSingleDeposit compounds one upfront deposit once per year.
	GrowthModeSingleDeposit GrowthMode = "single_deposit"
	// GrowthModePeriodic compounds at the contribution frequency and adds a fixed contribution each period.
	GrowthModePeriodic GrowthMode = "periodic"
)

// GrowthPeriod is one row of a growth projection.
//
// In single-deposit mode InterestEarned is cumulative (balance minus the deposit) and
// OpeningBalance is the deposit itself; in periodic mode every figure is per period.
// ClosingBalance always equals OpeningBalance + InterestEarned + Contribution.
type GrowthPeriod struct {
	PeriodIndex             int             `json:"period_index"`
	OpeningBalance          decimal.Decimal `json:"opening_balance"`
	Contribution            decimal.Decimal `json:"contribution"`
	InterestEarned          decimal.Decimal `json:"interest_earned"`
	ClosingBalance          decimal.Decimal `json:"closing_balance"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
	CumulativeInterest      decimal.Decimal `json:"cumulative_interest"`
}

// GrowthSeries is the full projection from period 0 through the horizon.
type GrowthSeries struct {
	Mode           GrowthMode      `json:"mode"`
	Frequency      string          `json:"frequency"`
	PeriodsPerYear int             `json:"periods_per_year"`
	PeriodicRate   decimal.Decimal `json:"periodic_rate"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
	Periods        []GrowthPeriod  `json:"periods"`

	// TotalContributed excludes the initial deposit.
	TotalContributed decimal.Decimal `json:"total_contributed"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
}

// ContributedCapital is the money the investor put in: the deposit plus every periodic contribution.
func (gs *GrowthSeries) ContributedCapital() decimal.Decimal {
	return gs.InitialDeposit.Add(gs.TotalContributed)
}

// Years returns the horizon covered by the series in years.
func (gs *GrowthSeries) Years() decimal.Decimal {
	if len(gs.Periods) == 0 || gs.PeriodsPerYear == 0 {
		return decimal.Zero
	}
	last := gs.Periods[len(gs.Periods)-1].PeriodIndex
	return decimal.NewFromInt(int64(last)).Div(decimal.NewFromInt(int64(gs.PeriodsPerYear)))
}

// RetirementAgeBalance is the projected balance if the investor retires at Age.
type RetirementAgeBalance struct {
	Age          int             `json:"age"`
	HorizonYears int             `json:"horizon_years"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

// RateBalance is the projected final balance under one annual rate.
type RateBalance struct {
	AnnualRate   decimal.Decimal `json:"annual_rate"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}
