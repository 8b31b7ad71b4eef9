package domain

import (
	"github.com/shopspring/decimal"
)

// BondClass is the price classification relative to face value.
type BondClass string

const (
	BondAtPar      BondClass = "par"
	BondAtPremium  BondClass = "premium"
	BondAtDiscount BondClass = "discount"
)

// BondInput describes a fixed-coupon bond and the rate used to discount it.
type BondInput struct {
	Name               string          `yaml:"name" json:"name"`
	FaceValue          decimal.Decimal `yaml:"face_value" json:"face_value"`
	AnnualCouponRate   decimal.Decimal `yaml:"coupon_rate" json:"coupon_rate"`
	Frequency          string          `yaml:"frequency" json:"frequency"`
	TermYears          decimal.Decimal `yaml:"term_years" json:"term_years"`
	AnnualDiscountRate decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
	// TargetPrice, when set, asks for the discount rate that prices the bond at this value.
	TargetPrice *decimal.Decimal `yaml:"target_price,omitempty" json:"target_price,omitempty"`
}

// CashFlow is one scheduled bond payment and its discounted value.
type CashFlow struct {
	PeriodIndex       int             `json:"period_index"`
	Coupon            decimal.Decimal `json:"coupon"`
	Principal         decimal.Decimal `json:"principal"`
	NominalCashFlow   decimal.Decimal `json:"nominal_cash_flow"`
	DiscountFactor    decimal.Decimal `json:"discount_factor"`
	PresentValue      decimal.Decimal `json:"present_value"`
	CumulativePresent decimal.Decimal `json:"cumulative_present_value"`
}

// BondValuation is the result of pricing a bond.
type BondValuation struct {
	Name                 string          `json:"name"`
	FaceValue            decimal.Decimal `json:"face_value"`
	Frequency            string          `json:"frequency"`
	PeriodsPerYear       int             `json:"periods_per_year"`
	NumPeriods           int             `json:"num_periods"`
	CouponPeriodicRate   decimal.Decimal `json:"coupon_periodic_rate"`
	DiscountPeriodicRate decimal.Decimal `json:"discount_periodic_rate"`
	AnnualDiscountRate   decimal.Decimal `json:"annual_discount_rate"`
	CouponPerPeriod      decimal.Decimal `json:"coupon_per_period"`
	Schedule             []CashFlow      `json:"schedule"`
	TotalNominal         decimal.Decimal `json:"total_nominal"`
	PresentValue         decimal.Decimal `json:"present_value"`
	CouponsPresentValue  decimal.Decimal `json:"coupons_present_value"`
	PrincipalPresent     decimal.Decimal `json:"principal_present_value"`
	Classification       BondClass       `json:"classification"`
}

// SensitivityPoint is one price on a price/rate curve.
type SensitivityPoint struct {
	AnnualDiscountRate decimal.Decimal `json:"annual_discount_rate"`
	PresentValue       decimal.Decimal `json:"present_value"`
}

// YieldSolution is the discount rate that prices a bond at a target value.
type YieldSolution struct {
	TargetPrice        decimal.Decimal `json:"target_price"`
	AnnualDiscountRate decimal.Decimal `json:"annual_discount_rate"`
	PresentValue       decimal.Decimal `json:"present_value"`
	Iterations         int             `json:"iterations"`
}

// BondReport groups everything computed for one bond.
type BondReport struct {
	Valuation   BondValuation      `json:"valuation"`
	Sensitivity []SensitivityPoint `json:"sensitivity,omitempty"`
	Yield       *YieldSolution     `json:"yield,omitempty"`
}
