package calculation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownFrequency is returned when a frequency name is not in the closed enumeration.
var ErrUnknownFrequency = errors.New("unknown compounding frequency")

// Frequency is a compounding or payment frequency. Its value is the number of periods per year.
type Frequency int

const (
	Annual      Frequency = 1
	Semiannual  Frequency = 2
	FourMonthly Frequency = 3
	Quarterly   Frequency = 4
	Bimonthly   Frequency = 6
	Monthly     Frequency = 12
)

// DefaultFrequency is the single documented fallback used by LookupFrequency.
const DefaultFrequency = Annual

var frequencyNames = map[Frequency]string{
	Annual:      "annual",
	Semiannual:  "semiannual",
	FourMonthly: "four-monthly",
	Quarterly:   "quarterly",
	Bimonthly:   "bimonthly",
	Monthly:     "monthly",
}

// frequencyAliases resolves user-facing synonyms, Spanish names included.
var frequencyAliases = map[string]Frequency{
	"annual":        Annual,
	"annually":      Annual,
	"yearly":        Annual,
	"anual":         Annual,
	"semiannual":    Semiannual,
	"semi-annual":   Semiannual,
	"semiannually":  Semiannual,
	"semestral":     Semiannual,
	"four-monthly":  FourMonthly,
	"fourmonthly":   FourMonthly,
	"cuatrimestral": FourMonthly,
	"quarterly":     Quarterly,
	"trimestral":    Quarterly,
	"bimonthly":     Bimonthly,
	"bi-monthly":    Bimonthly,
	"bimestral":     Bimonthly,
	"monthly":       Monthly,
	"mensual":       Monthly,
}

// ParseFrequency resolves a frequency name. Unknown names return ErrUnknownFrequency.
func ParseFrequency(name string) (Frequency, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if f, ok := frequencyAliases[n]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, name)
}

// LookupFrequency resolves a frequency name, falling back to DefaultFrequency (annual)
// with ok=false when the name is not recognized.
func LookupFrequency(name string) (f Frequency, ok bool) {
	f, err := ParseFrequency(name)
	if err != nil {
		return DefaultFrequency, false
	}
	return f, true
}

// PeriodsPerYear returns the number of compounding periods in a year.
func (f Frequency) PeriodsPerYear() int { return int(f) }

// Valid reports whether f is one of the enumerated frequencies.
func (f Frequency) Valid() bool {
	_, ok := frequencyNames[f]
	return ok
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("frequency(%d)", int(f))
}

// FrequencyNames returns the canonical names in ascending period order.
func FrequencyNames() []string {
	order := []Frequency{Annual, Semiannual, FourMonthly, Quarterly, Bimonthly, Monthly}
	names := make([]string, 0, len(order))
	for _, f := range order {
		names = append(names, f.String())
	}
	return names
}

// PeriodicRate converts an annual effective rate to the equivalent effective rate per period:
//
//	i = (1 + TEA)^(1/n) - 1
//
// Compounding i over n periods reproduces the annual rate exactly (up to float rounding in the root).
// Defined for any annual rate > -1.
func PeriodicRate(annualRate decimal.Decimal, f Frequency) decimal.Decimal {
	n := f.PeriodsPerYear()
	if n <= 1 {
		return annualRate
	}
	root := math.Pow(1+annualRate.InexactFloat64(), 1/float64(n))
	return decimal.NewFromFloat(root).Sub(decimal.NewFromInt(1))
}

// AnnualRate is the inverse of PeriodicRate: (1 + i)^n - 1.
func AnnualRate(periodicRate decimal.Decimal, f Frequency) decimal.Decimal {
	return GrowthFactor(periodicRate, f.PeriodsPerYear()).Sub(decimal.NewFromInt(1))
}

// ratePrecision bounds the scale of compounded factors so repeated multiplication stays cheap.
const ratePrecision int32 = 20

// GrowthFactor returns (1 + rate)^n for n >= 0, rounded to ratePrecision places at each step.
func GrowthFactor(rate decimal.Decimal, n int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	base := one.Add(rate)
	factor := one
	for k := 0; k < n; k++ {
		factor = factor.Mul(base).Round(ratePrecision)
	}
	return factor
}
