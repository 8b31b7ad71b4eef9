package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthSeries_ContributedCapital(t *testing.T) {
	gs := &GrowthSeries{
		InitialDeposit:   decimal.NewFromInt(3000),
		TotalContributed: decimal.NewFromInt(4800),
	}
	assert.True(t, gs.ContributedCapital().Equal(decimal.NewFromInt(7800)))
}

func TestGrowthSeries_Years(t *testing.T) {
	monthly := &GrowthSeries{PeriodsPerYear: 12}
	assert.True(t, monthly.Years().IsZero(), "empty series")

	for k := 0; k <= 30; k++ {
		monthly.Periods = append(monthly.Periods, GrowthPeriod{PeriodIndex: k})
	}
	assert.True(t, monthly.Years().Equal(decimal.NewFromFloat(2.5)))

	annual := &GrowthSeries{PeriodsPerYear: 1, Periods: []GrowthPeriod{{PeriodIndex: 0}, {PeriodIndex: 1}}}
	assert.True(t, annual.Years().Equal(decimal.NewFromInt(1)))
}
