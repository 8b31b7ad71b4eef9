package output

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlights are headline figures derived from a plan result.
type Highlights struct {
	// InterestShare is the percentage of the final balance that came from interest.
	InterestShare decimal.Decimal
	// GrowthMultiple is final balance divided by contributed capital.
	GrowthMultiple decimal.Decimal
	// BestRetirementAge is the compared age with the highest projected balance.
	BestRetirementAge int
	BondsByClass      map[domain.BondClass]int
	// CheapestBond is the bond priced furthest below its face value, as a percentage of face.
	CheapestBond         string
	CheapestBondDiscount decimal.Decimal
}

// AnalyzePlan derives headline figures for the summary outputs.
func AnalyzePlan(results *domain.PlanResult) Highlights {
	h := Highlights{BondsByClass: map[domain.BondClass]int{}}

	if g := results.Growth; g != nil && g.FinalBalance.IsPositive() {
		h.InterestShare = g.TotalInterest.Div(g.FinalBalance).Mul(hundred)
		if contributed := g.ContributedCapital(); contributed.IsPositive() {
			h.GrowthMultiple = g.FinalBalance.Div(contributed)
		}
	}

	var best decimal.Decimal
	for _, ra := range results.RetirementAges {
		if ra.FinalBalance.GreaterThan(best) {
			best = ra.FinalBalance
			h.BestRetirementAge = ra.Age
		}
	}

	first := true
	for _, b := range results.Bonds {
		v := b.Valuation
		h.BondsByClass[v.Classification]++
		if !v.FaceValue.IsPositive() {
			continue
		}
		discount := v.FaceValue.Sub(v.PresentValue).Div(v.FaceValue).Mul(hundred)
		if first || discount.GreaterThan(h.CheapestBondDiscount) {
			h.CheapestBond = v.Name
			h.CheapestBondDiscount = discount
			first = false
		}
	}
	return h
}
