package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	cur := currencyOf(results)
	fmt.Fprintln(&buf, "INVESTMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")

	if g := results.Growth; g != nil {
		fmt.Fprintf(&buf, "Growth: %s at %s for %s years -> %s (contributed %s, interest %s)\n",
			g.Mode, FormatRate(g.AnnualRate), g.Years().StringFixed(2),
			FormatMoney(g.FinalBalance, cur), FormatMoney(g.ContributedCapital(), cur), FormatMoney(g.TotalInterest, cur))
	}
	if p := results.Payout; p != nil && p.Plan.Horizon.IsLumpSum() {
		fmt.Fprintf(&buf, "Payout: lump sum of %s after %s tax\n",
			FormatMoney(p.Tax.NetCapital, cur), FormatMoney(p.Tax.TaxAmount, cur))
	} else if p != nil {
		fmt.Fprintf(&buf, "Payout: net %s after %s tax, %s/month (%s)\n",
			FormatMoney(p.Tax.NetCapital, cur), FormatMoney(p.Tax.TaxAmount, cur),
			FormatMoney(p.Plan.MonthlyPayout, cur), p.Plan.Horizon)
	}
	for _, b := range results.Bonds {
		v := b.Valuation
		fmt.Fprintf(&buf, "Bond %s: price %s vs face %s at %s (%s)\n",
			v.Name, FormatMoney(v.PresentValue, cur), FormatMoney(v.FaceValue, cur),
			FormatRate(v.AnnualDiscountRate), v.Classification)
	}

	h := AnalyzePlan(results)
	fmt.Fprintln(&buf)
	if results.Growth != nil {
		fmt.Fprintf(&buf, "Interest share of final balance: %s (x%s contributed)\n", FormatPercentage(h.InterestShare), h.GrowthMultiple.StringFixed(2))
	}
	if h.BestRetirementAge > 0 {
		fmt.Fprintf(&buf, "Highest balance among compared ages: %d\n", h.BestRetirementAge)
	}
	if h.CheapestBond != "" {
		fmt.Fprintf(&buf, "Deepest discount to face: %s (%s)\n", h.CheapestBond, FormatPercentage(h.CheapestBondDiscount))
	}
	return buf.Bytes(), nil
}
