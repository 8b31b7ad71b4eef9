package calculation

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxPolicy_RateFor(t *testing.T) {
	tp := NewDefaultTaxPolicy()

	rate, err := tp.RateFor(domain.JurisdictionDomestic)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.05)))

	rate, err = tp.RateFor(domain.JurisdictionForeign)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.295)))

	_, err = tp.RateFor("offshore")
	assert.ErrorContains(t, err, "offshore")
}

func TestJurisdictionForCurrency(t *testing.T) {
	tests := map[string]domain.Jurisdiction{
		"PEN":   domain.JurisdictionDomestic,
		" pen ": domain.JurisdictionDomestic,
		"USD":   domain.JurisdictionForeign,
		"EUR":   domain.JurisdictionForeign,
		"":      domain.JurisdictionForeign,
	}
	for currency, want := range tests {
		assert.Equal(t, want, JurisdictionForCurrency(currency), "currency %q", currency)
	}
}
