package output

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzePlan_Highlights(t *testing.T) {
	plan := buildTestPlan()
	h := AnalyzePlan(plan)

	g := plan.Growth
	wantShare := g.TotalInterest.Div(g.FinalBalance).Mul(decimal.NewFromInt(100))
	assert.True(t, h.InterestShare.Equal(wantShare))
	assert.True(t, h.GrowthMultiple.GreaterThan(decimal.NewFromInt(1)))
	assert.Equal(t, 65, h.BestRetirementAge)
	assert.Equal(t, 1, h.BondsByClass[domain.BondAtDiscount])
	assert.Equal(t, "Corporate 5Y", h.CheapestBond)
	assert.True(t, h.CheapestBondDiscount.IsPositive())
}

func TestAnalyzePlan_PicksDeepestDiscount(t *testing.T) {
	bond := func(name string, pv int64) domain.BondReport {
		return domain.BondReport{Valuation: domain.BondValuation{
			Name:           name,
			FaceValue:      decimal.NewFromInt(1000),
			PresentValue:   decimal.NewFromInt(pv),
			Classification: domain.BondAtDiscount,
		}}
	}
	plan := &domain.PlanResult{Bonds: []domain.BondReport{bond("A", 990), bond("B", 900), bond("C", 1050)}}

	h := AnalyzePlan(plan)
	assert.Equal(t, "B", h.CheapestBond)
	assert.True(t, h.CheapestBondDiscount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 3, h.BondsByClass[domain.BondAtDiscount])
}

func TestAnalyzePlan_Empty(t *testing.T) {
	h := AnalyzePlan(&domain.PlanResult{})
	assert.True(t, h.InterestShare.IsZero())
	assert.Equal(t, 0, h.BestRetirementAge)
	assert.Empty(t, h.CheapestBond)
}
