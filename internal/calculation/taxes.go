package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CAPITAL GAINS TAX ASSUMPTIONS:
//
// 1. Domestic investments (local currency, PEN): 5% on realized gains
// 2. Foreign investments (USD): 29.5% on realized gains
// 3. Gains are measured against contributed capital (deposit + contributions); losses are not taxed

// TaxPolicy resolves a capital-gains tax rate from an investment's jurisdiction.
type TaxPolicy struct {
	DomesticRate decimal.Decimal
	ForeignRate  decimal.Decimal
}

// NewDefaultTaxPolicy returns the Peruvian rates: 5% domestic, 29.5% foreign.
func NewDefaultTaxPolicy() *TaxPolicy {
	return &TaxPolicy{
		DomesticRate: decimal.NewFromFloat(0.05),
		ForeignRate:  decimal.NewFromFloat(0.295),
	}
}

// RateFor returns the tax rate for a jurisdiction.
func (tp *TaxPolicy) RateFor(j domain.Jurisdiction) (decimal.Decimal, error) {
	switch j {
	case domain.JurisdictionDomestic:
		return tp.DomesticRate, nil
	case domain.JurisdictionForeign:
		return tp.ForeignRate, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown jurisdiction %q", j)
	}
}

// JurisdictionForCurrency maps the local currency to domestic and everything else to foreign.
func JurisdictionForCurrency(currency string) domain.Jurisdiction {
	if strings.EqualFold(strings.TrimSpace(currency), "PEN") {
		return domain.JurisdictionDomestic
	}
	return domain.JurisdictionForeign
}
