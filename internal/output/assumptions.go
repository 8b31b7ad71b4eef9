package output

import "github.com/rpgo/investment-calculator/internal/domain"

// DefaultAssumptions lists the modeling assumptions rendered when a result carries none of its own.
var DefaultAssumptions = []string{
	"Rates are annual effective rates (TEA); periodic rates use (1 + TEA)^(1/n) - 1",
	"Contributions are added at the end of each period, after interest",
	"Capital-gains tax: 5% on domestic (PEN) investments, 29.5% on foreign investments",
	"Payouts are monthly; a perpetual payout never draws down principal",
}

func assumptionsFor(results *domain.PlanResult) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
