package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Jurisdiction classifies an investment for capital-gains tax purposes.
type Jurisdiction string

const (
	JurisdictionDomestic Jurisdiction = "domestic"
	JurisdictionForeign  Jurisdiction = "foreign"
)

// Investor holds the personal details needed to size the accumulation horizon.
type Investor struct {
	Name          string     `yaml:"name" json:"name"`
	CurrentAge    int        `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	BirthDate     *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	RetirementAge int        `yaml:"retirement_age" json:"retirement_age"`
	Currency      string     `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// GrowthInput configures the accumulation phase.
type GrowthInput struct {
	Mode           GrowthMode      `yaml:"mode" json:"mode"`
	InitialDeposit decimal.Decimal `yaml:"initial_deposit" json:"initial_deposit"`
	Contribution   decimal.Decimal `yaml:"contribution,omitempty" json:"contribution,omitempty"`
	AnnualRate     decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	Frequency      string          `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	// HorizonYears overrides retirement_age - current_age when set.
	HorizonYears int `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`
	// ComparisonAges and ComparisonRates drive the optional what-if tables.
	ComparisonAges  []int             `yaml:"comparison_ages,omitempty" json:"comparison_ages,omitempty"`
	ComparisonRates []decimal.Decimal `yaml:"comparison_rates,omitempty" json:"comparison_rates,omitempty"`
}

// PayoutOption selects how net capital is paid out.
type PayoutOption string

const (
	PayoutMonthly PayoutOption = "monthly"
	PayoutLumpSum PayoutOption = "lump_sum"
)

// PayoutInput configures the decumulation phase.
type PayoutInput struct {
	Jurisdiction Jurisdiction `yaml:"jurisdiction" json:"jurisdiction"`
	// Option defaults to a monthly payout.
	Option PayoutOption `yaml:"option,omitempty" json:"option,omitempty"`
	// TaxRate overrides the jurisdiction rate when set.
	TaxRate *decimal.Decimal `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
	// AnnualRate defaults to half the accumulation rate when omitted.
	AnnualRate *decimal.Decimal `yaml:"annual_rate,omitempty" json:"annual_rate,omitempty"`
	// HorizonYears of 0 or >= 100 means a perpetual payout.
	HorizonYears int `yaml:"horizon_years,omitempty" json:"horizon_years,omitempty"`
}

// Horizon resolves the payout horizon: a lump sum, or a monthly payout over HorizonYears.
func (p *PayoutInput) Horizon() PayoutHorizon {
	if p.Option == PayoutLumpSum {
		return LumpSum()
	}
	return HorizonFromYears(p.HorizonYears)
}

// SweepInput configures a bond price/rate sensitivity sweep.
type SweepInput struct {
	Spread decimal.Decimal `yaml:"spread" json:"spread"`
	Points int             `yaml:"points" json:"points"`
}

// Configuration is a complete plan file.
type Configuration struct {
	Investor Investor     `yaml:"investor" json:"investor"`
	Growth   *GrowthInput `yaml:"growth,omitempty" json:"growth,omitempty"`
	Payout   *PayoutInput `yaml:"payout,omitempty" json:"payout,omitempty"`
	Bonds    []BondInput  `yaml:"bonds,omitempty" json:"bonds,omitempty"`
	Sweep    *SweepInput  `yaml:"sweep,omitempty" json:"sweep,omitempty"`
}

// PayoutRate is the payout-phase annual rate: the explicit payout rate, or half the accumulation
// rate when none is given.
func (c *Configuration) PayoutRate() decimal.Decimal {
	if c.Payout != nil && c.Payout.AnnualRate != nil {
		return *c.Payout.AnnualRate
	}
	if c.Growth != nil {
		return c.Growth.AnnualRate.Div(decimal.NewFromInt(2))
	}
	return decimal.Zero
}

// PlanResult is everything computed for one Configuration. It is the single input of every formatter.
type PlanResult struct {
	Name           string                 `json:"name"`
	Currency       string                 `json:"currency"`
	GeneratedAt    time.Time              `json:"generated_at"`
	CurrentAge     int                    `json:"current_age"`
	RetirementAge  int                    `json:"retirement_age"`
	RetirementDate *time.Time             `json:"retirement_date,omitempty"`
	Growth         *GrowthSeries          `json:"growth,omitempty"`
	RetirementAges []RetirementAgeBalance `json:"retirement_age_comparison,omitempty"`
	RateComparison []RateBalance          `json:"rate_comparison,omitempty"`
	Payout         *PayoutResult          `json:"payout,omitempty"`
	Bonds          []BondReport           `json:"bonds,omitempty"`
	Assumptions    []string               `json:"assumptions,omitempty"`
}
