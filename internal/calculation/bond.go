package calculation

import (
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// parTolerance is how close present value and face value must be for a bond to count as trading at par.
var parTolerance = decimal.NewFromFloat(0.01)

// Sensitivity sweep defaults.
var (
	DefaultSweepSpread = decimal.NewFromFloat(0.05)
	sweepFloor         = decimal.NewFromFloat(0.01)
	sweepCeiling       = decimal.NewFromFloat(0.50)
)

const DefaultSweepPoints = 50

// NumPeriods returns floor(termYears * periodsPerYear).
func NumPeriods(termYears decimal.Decimal, f Frequency) int {
	return int(termYears.Mul(decimal.NewFromInt(int64(f.PeriodsPerYear()))).Floor().IntPart())
}

// CouponPerPeriod is face value times the periodic equivalent of the annual coupon rate.
func CouponPerPeriod(faceValue, annualCouponRate decimal.Decimal, f Frequency) decimal.Decimal {
	return faceValue.Mul(PeriodicRate(annualCouponRate, f))
}

// BuildCashFlows returns the nominal schedule: the coupon in periods 1..n-1 and coupon plus
// face value in period n. Present values are left zero.
func BuildCashFlows(faceValue, coupon decimal.Decimal, n int) []domain.CashFlow {
	flows := make([]domain.CashFlow, 0, n)
	for t := 1; t <= n; t++ {
		principal := decimal.Zero
		if t == n {
			principal = faceValue
		}
		flows = append(flows, domain.CashFlow{
			PeriodIndex:     t,
			Coupon:          coupon,
			Principal:       principal,
			NominalCashFlow: coupon.Add(principal),
		})
	}
	return flows
}

// DiscountCashFlows fills in discount factors and present values in place:
// pv(t) = cf(t) / (1 + i)^t. It returns the total present value.
func DiscountCashFlows(flows []domain.CashFlow, discountPeriodicRate decimal.Decimal) decimal.Decimal {
	onePlus := decimal.NewFromInt(1).Add(discountPeriodicRate)
	growth := decimal.NewFromInt(1)
	total := decimal.Zero
	for k := range flows {
		// Schedules are contiguous from period 1, so growth tracks (1+i)^t.
		growth = growth.Mul(onePlus).Round(ratePrecision)
		flows[k].DiscountFactor = decimal.NewFromInt(1).Div(growth)
		flows[k].PresentValue = flows[k].NominalCashFlow.Div(growth)
		total = total.Add(flows[k].PresentValue)
		flows[k].CumulativePresent = total
	}
	return total
}

// PriceBond values a fixed-coupon bond as the direct discounted sum of its cash flows.
func PriceBond(faceValue, annualCouponRate decimal.Decimal, f Frequency, termYears, annualDiscountRate decimal.Decimal) *domain.BondValuation {
	n := NumPeriods(termYears, f)
	couponRate := PeriodicRate(annualCouponRate, f)
	coupon := faceValue.Mul(couponRate)
	discountRate := PeriodicRate(annualDiscountRate, f)

	flows := BuildCashFlows(faceValue, coupon, n)
	pv := DiscountCashFlows(flows, discountRate)

	totalNominal := decimal.Zero
	couponsPV := decimal.Zero
	principalPV := decimal.Zero
	for _, cf := range flows {
		totalNominal = totalNominal.Add(cf.NominalCashFlow)
		couponsPV = couponsPV.Add(cf.Coupon.Mul(cf.DiscountFactor))
		principalPV = principalPV.Add(cf.Principal.Mul(cf.DiscountFactor))
	}

	return &domain.BondValuation{
		FaceValue:            faceValue,
		Frequency:            f.String(),
		PeriodsPerYear:       f.PeriodsPerYear(),
		NumPeriods:           n,
		CouponPeriodicRate:   couponRate,
		DiscountPeriodicRate: discountRate,
		AnnualDiscountRate:   annualDiscountRate,
		CouponPerPeriod:      coupon,
		Schedule:             flows,
		TotalNominal:         totalNominal,
		PresentValue:         pv,
		CouponsPresentValue:  couponsPV,
		PrincipalPresent:     principalPV,
		Classification:       ClassifyBond(pv, faceValue),
	}
}

// PriceBondDecomposed values the bond in closed form as a coupon annuity plus a discounted principal:
//
//	PV = C * (1 - (1+i)^-n) / i  +  F / (1+i)^n
//
// It returns the total and both components. It must agree with PriceBond.
func PriceBondDecomposed(faceValue, annualCouponRate decimal.Decimal, f Frequency, termYears, annualDiscountRate decimal.Decimal) (total, couponsPV, principalPV decimal.Decimal) {
	n := NumPeriods(termYears, f)
	if n <= 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	coupon := CouponPerPeriod(faceValue, annualCouponRate, f)
	i := PeriodicRate(annualDiscountRate, f)
	growth := GrowthFactor(i, n)

	if i.IsZero() {
		couponsPV = coupon.Mul(decimal.NewFromInt(int64(n)))
	} else {
		one := decimal.NewFromInt(1)
		couponsPV = coupon.Mul(one.Sub(one.Div(growth))).Div(i)
	}
	principalPV = faceValue.Div(growth)
	return couponsPV.Add(principalPV), couponsPV, principalPV
}

// ClassifyBond compares a present value with face value.
func ClassifyBond(presentValue, faceValue decimal.Decimal) domain.BondClass {
	diff := presentValue.Sub(faceValue)
	switch {
	case diff.Abs().LessThanOrEqual(parTolerance):
		return domain.BondAtPar
	case diff.IsPositive():
		return domain.BondAtPremium
	default:
		return domain.BondAtDiscount
	}
}

// SensitivityRates returns points evenly spaced discount rates in
// [max(0.01, base-spread), min(0.50, base+spread)].
func SensitivityRates(base, spread decimal.Decimal, points int) []decimal.Decimal {
	lo := decimal.Max(sweepFloor, base.Sub(spread))
	hi := decimal.Min(sweepCeiling, base.Add(spread))
	if points <= 1 || !hi.GreaterThan(lo) {
		return []decimal.Decimal{lo}
	}
	step := hi.Sub(lo).Div(decimal.NewFromInt(int64(points - 1)))
	rates := make([]decimal.Decimal, 0, points)
	for k := 0; k < points; k++ {
		rates = append(rates, lo.Add(step.Mul(decimal.NewFromInt(int64(k)))))
	}
	rates[points-1] = hi
	return rates
}

// SweepDiscountRates reprices the bond at each discount rate.
func SweepDiscountRates(faceValue, annualCouponRate decimal.Decimal, f Frequency, termYears decimal.Decimal, rates []decimal.Decimal) []domain.SensitivityPoint {
	points := make([]domain.SensitivityPoint, 0, len(rates))
	for _, r := range rates {
		v := PriceBond(faceValue, annualCouponRate, f, termYears, r)
		points = append(points, domain.SensitivityPoint{
			AnnualDiscountRate: r,
			PresentValue:       v.PresentValue,
		})
	}
	return points
}
