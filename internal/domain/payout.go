package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PerpetualThresholdYears is the payout horizon at and beyond which a plan is treated as perpetual.
const PerpetualThresholdYears = 100

type horizonKind int

const (
	horizonPerpetual horizonKind = iota
	horizonFixedTerm
	horizonLumpSum
)

// PayoutHorizon is Perpetual, FixedTerm(months) or LumpSum. The zero value is Perpetual.
type PayoutHorizon struct {
	kind   horizonKind
	months int
}

// Perpetual returns a horizon under which principal is never drawn down.
func Perpetual() PayoutHorizon {
	return PayoutHorizon{kind: horizonPerpetual}
}

// FixedTerm returns a horizon that fully amortizes capital over the given number of months.
// Non-positive month counts are treated as perpetual.
func FixedTerm(months int) PayoutHorizon {
	if months <= 0 {
		return Perpetual()
	}
	return PayoutHorizon{kind: horizonFixedTerm, months: months}
}

// LumpSum returns a horizon that pays the whole net capital out at once.
func LumpSum() PayoutHorizon {
	return PayoutHorizon{kind: horizonLumpSum}
}

// HorizonFromYears maps a year count to a horizon: 0 and anything at or above
// PerpetualThresholdYears is perpetual.
func HorizonFromYears(years int) PayoutHorizon {
	if years <= 0 || years >= PerpetualThresholdYears {
		return Perpetual()
	}
	return FixedTerm(years * 12)
}

// IsPerpetual reports whether the horizon never ends.
func (h PayoutHorizon) IsPerpetual() bool { return h.kind == horizonPerpetual }

// IsLumpSum reports whether net capital is paid out in a single payment.
func (h PayoutHorizon) IsLumpSum() bool { return h.kind == horizonLumpSum }

// Months returns the payout length in months, or 0 for perpetual and lump-sum horizons.
func (h PayoutHorizon) Months() int {
	if h.kind != horizonFixedTerm {
		return 0
	}
	return h.months
}

func (h PayoutHorizon) String() string {
	switch h.kind {
	case horizonPerpetual:
		return "perpetual"
	case horizonLumpSum:
		return "lump sum"
	default:
		return fmt.Sprintf("%d months", h.months)
	}
}

// MarshalJSON renders perpetual and lump-sum horizons as strings and fixed terms as a month count.
func (h PayoutHorizon) MarshalJSON() ([]byte, error) {
	switch h.kind {
	case horizonPerpetual:
		return json.Marshal("perpetual")
	case horizonLumpSum:
		return json.Marshal("lump_sum")
	}
	return json.Marshal(struct {
		Months int `json:"months"`
	}{h.months})
}

// TaxResult is the capital-gains tax applied to accumulated growth.
type TaxResult struct {
	GrossCapital       decimal.Decimal `json:"gross_capital"`
	ContributedCapital decimal.Decimal `json:"contributed_capital"`
	TaxableGain        decimal.Decimal `json:"taxable_gain"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	NetCapital         decimal.Decimal `json:"net_capital"`
}

// PayoutPlan is a sustainable payout derived from net capital. FinalPayout is the last payment of a
// fixed-term plan, or the single payment of a lump sum; it absorbs rounding so the payments add back
// to exactly TotalPaidOut.
type PayoutPlan struct {
	NetCapital      decimal.Decimal `json:"net_capital"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	PeriodicRate    decimal.Decimal `json:"periodic_rate"`
	Horizon         PayoutHorizon   `json:"horizon"`
	MonthlyPayout   decimal.Decimal `json:"monthly_payout"`
	FinalPayout     decimal.Decimal `json:"final_payout"`
	TotalPaidOut    decimal.Decimal `json:"total_paid_out"`
	ResidualCapital decimal.Decimal `json:"residual_capital"`
}

// PayoutResult bundles the tax step and the payout step.
type PayoutResult struct {
	Tax  TaxResult  `json:"tax"`
	Plan PayoutPlan `json:"plan"`
}
