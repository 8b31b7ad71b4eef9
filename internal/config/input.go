package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrValidation marks every input validation failure.
var ErrValidation = errors.New("validation failed")

// ValidationError reports why an input field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

// Is lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var (
	maxRate    = decimal.NewFromFloat(0.50)
	maxTaxRate = decimal.NewFromInt(1)
	minAge     = 18
	maxAge     = 100
)

// InputParser handles parsing of plan files
type InputParser struct {
	// Now resolves ages from birth dates during validation.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads a plan from a YAML (or JSON) file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates a loaded plan. The calculation engine assumes inputs that passed here.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Growth == nil && len(config.Bonds) == 0 {
		return invalid("plan", "at least one of growth or bonds is required")
	}

	if config.Growth != nil {
		if err := ip.ValidateInvestor(&config.Investor); err != nil {
			return err
		}
		if err := ValidateGrowthInput(config.Growth); err != nil {
			return err
		}
	}

	if config.Payout != nil {
		if config.Growth == nil {
			return invalid("payout", "a growth section is required to size payout capital")
		}
		if err := ValidatePayoutInput(config.Payout); err != nil {
			return err
		}
	}

	for i := range config.Bonds {
		if err := ValidateBondInput(&config.Bonds[i]); err != nil {
			return fmt.Errorf("bond %d: %w", i, err)
		}
	}

	if config.Sweep != nil {
		if err := ValidateSweepInput(config.Sweep); err != nil {
			return err
		}
	}

	return nil
}

// ValidateInvestor checks ages and their ordering
func (ip *InputParser) ValidateInvestor(inv *domain.Investor) error {
	current := inv.CurrentAge
	if inv.BirthDate != nil && !inv.BirthDate.IsZero() {
		if inv.BirthDate.After(ip.Now()) {
			return invalid("investor.birth_date", "cannot be in the future")
		}
		current = dateutil.Age(*inv.BirthDate, ip.Now())
	}
	if err := ValidateAge("investor.current_age", current); err != nil {
		return err
	}
	if err := ValidateAge("investor.retirement_age", inv.RetirementAge); err != nil {
		return err
	}
	return ValidateAgeOrder(current, inv.RetirementAge)
}

// ValidateGrowthInput checks the accumulation inputs
func ValidateGrowthInput(g *domain.GrowthInput) error {
	switch g.Mode {
	case domain.GrowthModeSingleDeposit:
	case domain.GrowthModePeriodic:
		if _, err := calculation.ParseFrequency(g.Frequency); err != nil {
			return invalid("growth.frequency", "%v (expected one of %v)", err, calculation.FrequencyNames())
		}
		if err := ValidateNonNegative("growth.contribution", g.Contribution); err != nil {
			return err
		}
	default:
		return invalid("growth.mode", "must be %q or %q", domain.GrowthModeSingleDeposit, domain.GrowthModePeriodic)
	}
	if err := ValidateNonNegative("growth.initial_deposit", g.InitialDeposit); err != nil {
		return err
	}
	if err := ValidateRate("growth.annual_rate", g.AnnualRate); err != nil {
		return err
	}
	if g.HorizonYears < 0 {
		return invalid("growth.horizon_years", "cannot be negative")
	}
	for i, r := range g.ComparisonRates {
		if err := ValidateRate(fmt.Sprintf("growth.comparison_rates[%d]", i), r); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePayoutInput checks the decumulation inputs
func ValidatePayoutInput(p *domain.PayoutInput) error {
	switch p.Jurisdiction {
	case "", domain.JurisdictionDomestic, domain.JurisdictionForeign:
	default:
		return invalid("payout.jurisdiction", "must be %q or %q", domain.JurisdictionDomestic, domain.JurisdictionForeign)
	}
	if p.TaxRate != nil && (p.TaxRate.IsNegative() || p.TaxRate.GreaterThan(maxTaxRate)) {
		return invalid("payout.tax_rate", "must be between 0 and 100%%")
	}
	switch p.Option {
	case "", domain.PayoutMonthly, domain.PayoutLumpSum:
	default:
		return invalid("payout.option", "must be %q or %q", domain.PayoutMonthly, domain.PayoutLumpSum)
	}
	if p.AnnualRate != nil {
		if err := ValidateRate("payout.annual_rate", *p.AnnualRate); err != nil {
			return err
		}
	}
	if p.HorizonYears < 0 {
		return invalid("payout.horizon_years", "cannot be negative")
	}
	return nil
}

// ValidateBondInput checks a bond definition
func ValidateBondInput(b *domain.BondInput) error {
	f, err := calculation.ParseFrequency(b.Frequency)
	if err != nil {
		return invalid("frequency", "%v (expected one of %v)", err, calculation.FrequencyNames())
	}
	if !b.FaceValue.IsPositive() {
		return invalid("face_value", "must be greater than zero")
	}
	if err := ValidateRate("coupon_rate", b.AnnualCouponRate); err != nil {
		return err
	}
	if err := ValidateRate("discount_rate", b.AnnualDiscountRate); err != nil {
		return err
	}
	if !b.TermYears.IsPositive() {
		return invalid("term_years", "must be greater than zero")
	}
	if calculation.NumPeriods(b.TermYears, f) < 1 {
		return invalid("term_years", "%s years is shorter than one %s period", b.TermYears, f)
	}
	if b.TargetPrice != nil && !b.TargetPrice.IsPositive() {
		return invalid("target_price", "must be greater than zero")
	}
	return nil
}

// ValidateSweepInput checks sensitivity sweep settings
func ValidateSweepInput(s *domain.SweepInput) error {
	if s.Points < 0 {
		return invalid("sweep.points", "cannot be negative")
	}
	if s.Spread.IsNegative() || s.Spread.GreaterThan(maxRate) {
		return invalid("sweep.spread", "must be between 0 and 50%%")
	}
	return nil
}

// ValidateRate requires a rate in [0, 0.50]
func ValidateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return invalid(field, "cannot be negative")
	}
	if rate.GreaterThan(maxRate) {
		return invalid(field, "cannot exceed 50%%")
	}
	return nil
}

// ValidateNonNegative rejects negative monetary amounts
func ValidateNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return invalid(field, "cannot be negative")
	}
	return nil
}

// ValidateAge requires an age between 18 and 100
func ValidateAge(field string, age int) error {
	if age < minAge {
		return invalid(field, "must be at least %d", minAge)
	}
	if age > maxAge {
		return invalid(field, "must be at most %d", maxAge)
	}
	return nil
}

// ValidateAgeOrder requires retirement strictly after the current age
func ValidateAgeOrder(currentAge, retirementAge int) error {
	if retirementAge <= currentAge {
		return invalid("investor.retirement_age", "must be greater than current age (%d)", currentAge)
	}
	return nil
}

// CreateExampleConfiguration creates an example plan
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	target := decimal.NewFromFloat(9295.74)
	payoutRate := decimal.NewFromFloat(0.08)
	return &domain.Configuration{
		Investor: domain.Investor{
			Name:          "Example Investor",
			CurrentAge:    30,
			RetirementAge: 65,
			Currency:      "PEN",
		},
		Growth: &domain.GrowthInput{
			Mode:            domain.GrowthModePeriodic,
			InitialDeposit:  decimal.NewFromInt(3000),
			Contribution:    decimal.NewFromInt(200),
			AnnualRate:      decimal.NewFromFloat(0.12),
			Frequency:       "monthly",
			ComparisonRates: []decimal.Decimal{decimal.NewFromFloat(0.06), decimal.NewFromFloat(0.09), decimal.NewFromFloat(0.12)},
		},
		Payout: &domain.PayoutInput{
			Jurisdiction: domain.JurisdictionDomestic,
			Option:       domain.PayoutMonthly,
			AnnualRate:   &payoutRate,
			HorizonYears: 25,
		},
		Bonds: []domain.BondInput{
			{
				Name:               "Corporate 5Y",
				FaceValue:          decimal.NewFromInt(10000),
				AnnualCouponRate:   decimal.NewFromFloat(0.10),
				Frequency:          "semiannual",
				TermYears:          decimal.NewFromInt(5),
				AnnualDiscountRate: decimal.NewFromFloat(0.12),
				TargetPrice:        &target,
			},
		},
		Sweep: &domain.SweepInput{
			Spread: decimal.NewFromFloat(0.05),
			Points: 11,
		},
	}
}

// SaveConfiguration writes a plan as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
