// Command price_curve prints every bond of a plan file as CSV: the sensitivity sweep with
// the direct and closed-form price at each rate.
package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: price_curve <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	if len(cfg.Bonds) == 0 {
		fmt.Println("no bonds")
		return
	}
	sweep := cfg.Sweep
	if sweep == nil {
		sweep = &domain.SweepInput{}
	}

	engine := calc.NewCalculationEngine()
	res, err := engine.RunPlan(context.Background(), &domain.Configuration{Bonds: cfg.Bonds, Sweep: sweep})
	if err != nil {
		panic(err)
	}

	fmt.Println("Bond,Rate,DirectPV,ClosedFormPV,Difference,Class")
	for i, b := range res.Bonds {
		in := cfg.Bonds[i]
		freq, _ := calc.ParseFrequency(in.Frequency)
		for _, pt := range b.Sensitivity {
			closed, _, _ := calc.PriceBondDecomposed(in.FaceValue, in.AnnualCouponRate, freq, in.TermYears, pt.AnnualDiscountRate)
			fmt.Printf("%s,%s,%s,%s,%s,%s\n",
				b.Valuation.Name,
				pt.AnnualDiscountRate.StringFixed(4),
				pt.PresentValue.StringFixed(2),
				closed.StringFixed(2),
				pt.PresentValue.Sub(closed).StringFixed(8),
				calc.ClassifyBond(pt.PresentValue, in.FaceValue),
			)
		}
		if b.Yield != nil {
			fmt.Printf("# %s: rate %s prices at %s (%d iterations)\n", b.Valuation.Name,
				b.Yield.AnnualDiscountRate.StringFixed(6), b.Yield.TargetPrice.StringFixed(2), b.Yield.Iterations)
		}
	}
}
