package output

import (
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return FormatMoney(amount, "USD") }

// FormatMoney formats an amount in the given ISO currency.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).FormatIn(currency)
}

// FormatPercentage formats a decimal that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.12) as a percentage ("12.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(hundred)) }

// FormatRatePrecise formats a fractional rate as a percentage with the given decimals.
func FormatRatePrecise(rate decimal.Decimal, places int32) string {
	return rate.Mul(hundred).StringFixed(places) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

func currencyOf(results *domain.PlanResult) string {
	if results.Currency == "" {
		return "USD"
	}
	return results.Currency
}
