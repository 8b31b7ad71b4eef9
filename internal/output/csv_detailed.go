package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVDetailedExporter emits every schedule in long form: one row per (section, item, period, field).
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Item", "Period", "Field", "Value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	var rows [][]string
	add := func(section, item string, period int, field, value string) {
		rows = append(rows, []string{section, item, intToString(period), field, value})
	}

	if g := results.Growth; g != nil {
		item := string(g.Mode)
		for _, p := range g.Periods {
			add("growth", item, p.PeriodIndex, "opening_balance", p.OpeningBalance.StringFixed(2))
			add("growth", item, p.PeriodIndex, "contribution", p.Contribution.StringFixed(2))
			add("growth", item, p.PeriodIndex, "interest_earned", p.InterestEarned.StringFixed(2))
			add("growth", item, p.PeriodIndex, "closing_balance", p.ClosingBalance.StringFixed(2))
		}
	}
	for _, b := range results.Bonds {
		v := b.Valuation
		for _, cf := range v.Schedule {
			add("bond", v.Name, cf.PeriodIndex, "coupon", cf.Coupon.StringFixed(2))
			add("bond", v.Name, cf.PeriodIndex, "principal", cf.Principal.StringFixed(2))
			add("bond", v.Name, cf.PeriodIndex, "cash_flow", cf.NominalCashFlow.StringFixed(2))
			add("bond", v.Name, cf.PeriodIndex, "discount_factor", cf.DiscountFactor.StringFixed(8))
			add("bond", v.Name, cf.PeriodIndex, "present_value", cf.PresentValue.StringFixed(2))
			add("bond", v.Name, cf.PeriodIndex, "cumulative_present_value", cf.CumulativePresent.StringFixed(2))
		}
		for i, sp := range b.Sensitivity {
			add("sweep", v.Name, i, "discount_rate", sp.AnnualDiscountRate.StringFixed(6))
			add("sweep", v.Name, i, "present_value", sp.PresentValue.StringFixed(2))
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
