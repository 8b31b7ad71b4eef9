package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

func pct(d decimal.Decimal) string {
	return d.Mul(decimalHundred).StringFixed(2) + "%"
}

// GenerateAssumptions lists the modeling assumptions behind a plan, for rendering in reports.
func (c *Configuration) GenerateAssumptions() []string {
	out := []string{
		"Rates are annual effective rates (TEA); periodic rates use (1 + TEA)^(1/n) - 1",
	}
	if c.Growth != nil {
		out = append(out, fmt.Sprintf("Accumulation return: %s annually", pct(c.Growth.AnnualRate)))
		if c.Growth.Mode == GrowthModePeriodic {
			out = append(out, "Contributions are added at the end of each period, after interest")
		}
	}
	if c.Payout != nil {
		out = append(out, "Capital-gains tax applies only to gains over contributed capital")
		switch h := c.Payout.Horizon(); {
		case h.IsLumpSum():
			out = append(out, "Lump-sum withdrawal: net capital is paid out at once")
		case h.IsPerpetual():
			out = append(out, fmt.Sprintf("Payout-phase return: %s annually, paid monthly", pct(c.PayoutRate())))
			out = append(out, "Perpetual payout: principal is never drawn down")
		default:
			out = append(out, fmt.Sprintf("Payout-phase return: %s annually, paid monthly", pct(c.PayoutRate())))
		}
	}
	if len(c.Bonds) > 0 {
		out = append(out, "Bond coupons use the periodic equivalent of the annual coupon rate")
	}
	return out
}
