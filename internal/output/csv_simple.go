package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per headline metric.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Metric", "Value"}); err != nil {
		return nil, err
	}
	var rows [][]string
	add := func(section, item, metric, value string) {
		rows = append(rows, []string{section, item, metric, value})
	}

	if g := results.Growth; g != nil {
		add("growth", string(g.Mode), "annual_rate", g.AnnualRate.String())
		add("growth", string(g.Mode), "periods", intToString(len(g.Periods)-1))
		add("growth", string(g.Mode), "initial_deposit", g.InitialDeposit.StringFixed(2))
		add("growth", string(g.Mode), "total_contributed", g.TotalContributed.StringFixed(2))
		add("growth", string(g.Mode), "total_interest", g.TotalInterest.StringFixed(2))
		add("growth", string(g.Mode), "final_balance", g.FinalBalance.StringFixed(2))
	}
	for _, ra := range results.RetirementAges {
		add("retirement_age", intToString(ra.Age), "final_balance", ra.FinalBalance.StringFixed(2))
	}
	for _, rb := range results.RateComparison {
		add("rate", rb.AnnualRate.String(), "final_balance", rb.FinalBalance.StringFixed(2))
	}
	if p := results.Payout; p != nil {
		add("payout", p.Plan.Horizon.String(), "tax_amount", p.Tax.TaxAmount.StringFixed(2))
		add("payout", p.Plan.Horizon.String(), "net_capital", p.Tax.NetCapital.StringFixed(2))
		add("payout", p.Plan.Horizon.String(), "monthly_payout", p.Plan.MonthlyPayout.StringFixed(2))
		add("payout", p.Plan.Horizon.String(), "residual_capital", p.Plan.ResidualCapital.StringFixed(2))
	}
	for _, b := range results.Bonds {
		v := b.Valuation
		add("bond", v.Name, "present_value", v.PresentValue.StringFixed(2))
		add("bond", v.Name, "total_nominal", v.TotalNominal.StringFixed(2))
		add("bond", v.Name, "classification", string(v.Classification))
		if b.Yield != nil {
			add("bond", v.Name, "solved_discount_rate", b.Yield.AnnualDiscountRate.StringFixed(6))
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
