package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrTargetOutOfRange is returned when no discount rate in the search bracket reaches the target price.
var ErrTargetOutOfRange = errors.New("target price outside the priceable range")

const (
	yieldMaxIterations = 200
)

var (
	yieldFloor          = decimal.Zero
	yieldCeiling        = decimal.NewFromFloat(0.50)
	yieldPriceTolerance = decimal.NewFromFloat(0.000001)
	yieldRateTolerance  = decimal.NewFromFloat(0.0000000001)
)

// SolveDiscountRate finds the annual discount rate in [0, 0.50] at which the bond's present value
// equals targetPrice. Present value is strictly decreasing in the discount rate, so bisection converges.
func SolveDiscountRate(faceValue, annualCouponRate decimal.Decimal, f Frequency, termYears, targetPrice decimal.Decimal) (*domain.YieldSolution, error) {
	price := func(rate decimal.Decimal) decimal.Decimal {
		return PriceBond(faceValue, annualCouponRate, f, termYears, rate).PresentValue
	}

	minRate, maxRate := yieldFloor, yieldCeiling
	highest, lowest := price(minRate), price(maxRate)
	if targetPrice.GreaterThan(highest) || targetPrice.LessThan(lowest) {
		return nil, fmt.Errorf("%w: %s not within [%s, %s]", ErrTargetOutOfRange,
			targetPrice.StringFixed(2), lowest.StringFixed(2), highest.StringFixed(2))
	}

	two := decimal.NewFromInt(2)
	for i := 1; i <= yieldMaxIterations; i++ {
		testRate := minRate.Add(maxRate).Div(two)
		pv := price(testRate)
		diff := pv.Sub(targetPrice)

		if diff.Abs().LessThan(yieldPriceTolerance) || maxRate.Sub(minRate).LessThan(yieldRateTolerance) {
			return &domain.YieldSolution{
				TargetPrice:        targetPrice,
				AnnualDiscountRate: testRate,
				PresentValue:       pv,
				Iterations:         i,
			}, nil
		}

		if diff.IsPositive() {
			// Price too high: discount harder.
			minRate = testRate
		} else {
			maxRate = testRate
		}
	}

	finalRate := minRate.Add(maxRate).Div(two)
	return &domain.YieldSolution{
		TargetPrice:        targetPrice,
		AnnualDiscountRate: finalRate,
		PresentValue:       price(finalRate),
		Iterations:         yieldMaxIterations,
	}, nil
}
