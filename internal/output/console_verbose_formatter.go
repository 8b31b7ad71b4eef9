package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full text report: every schedule and table in the plan.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const ruleWidth = 81

func (c ConsoleVerboseFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	cur := currencyOf(results)

	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, "DETAILED INVESTMENT PLAN ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", ruleWidth))
	if results.Name != "" {
		fmt.Fprintf(&buf, "Investor: %s\n", results.Name)
	}
	if results.RetirementAge > 0 {
		fmt.Fprintf(&buf, "Current age: %d   Retirement age: %d", results.CurrentAge, results.RetirementAge)
		if results.RetirementDate != nil {
			fmt.Fprintf(&buf, " (%s)", results.RetirementDate.Format("2006-01-02"))
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if results.Growth != nil {
		writeGrowthSection(&buf, results.Growth, cur)
	}
	if len(results.RetirementAges) > 0 {
		heading(&buf, "RETIREMENT AGE COMPARISON")
		fmt.Fprintf(&buf, "%-6s %-8s %22s\n", "Age", "Years", "Projected Balance")
		for _, ra := range results.RetirementAges {
			fmt.Fprintf(&buf, "%-6d %-8d %22s\n", ra.Age, ra.HorizonYears, FormatMoney(ra.FinalBalance, cur))
		}
		fmt.Fprintln(&buf)
	}
	if len(results.RateComparison) > 0 {
		heading(&buf, "RATE COMPARISON")
		fmt.Fprintf(&buf, "%-10s %22s\n", "Rate", "Final Balance")
		for _, rb := range results.RateComparison {
			fmt.Fprintf(&buf, "%-10s %22s\n", FormatRate(rb.AnnualRate), FormatMoney(rb.FinalBalance, cur))
		}
		fmt.Fprintln(&buf)
	}
	if results.Payout != nil {
		writePayoutSection(&buf, results.Payout, cur)
	}
	for _, b := range results.Bonds {
		writeBondSection(&buf, b, cur)
	}
	return buf.Bytes(), nil
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func writeGrowthSection(w io.Writer, g *domain.GrowthSeries, cur string) {
	heading(w, "PORTFOLIO GROWTH")
	fmt.Fprintf(w, "Mode: %s   Frequency: %s (%d/yr)\n", g.Mode, g.Frequency, g.PeriodsPerYear)
	fmt.Fprintf(w, "Annual rate: %s   Periodic rate: %s\n", FormatRate(g.AnnualRate), FormatRatePrecise(g.PeriodicRate, 4))
	fmt.Fprintf(w, "Initial deposit:    %s\n", FormatMoney(g.InitialDeposit, cur))
	fmt.Fprintf(w, "Total contributed:  %s\n", FormatMoney(g.TotalContributed, cur))
	fmt.Fprintf(w, "Total interest:     %s\n", FormatMoney(g.TotalInterest, cur))
	fmt.Fprintf(w, "Final balance:      %s\n", FormatMoney(g.FinalBalance, cur))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-7s %18s %14s %16s %18s\n", "Period", "Opening", "Contribution", "Interest", "Closing")
	for _, p := range g.Periods {
		fmt.Fprintf(w, "%-7d %18s %14s %16s %18s\n",
			p.PeriodIndex,
			FormatMoney(p.OpeningBalance, cur),
			FormatMoney(p.Contribution, cur),
			FormatMoney(p.InterestEarned, cur),
			FormatMoney(p.ClosingBalance, cur),
		)
	}
	fmt.Fprintln(w)
}

func writePayoutSection(w io.Writer, p *domain.PayoutResult, cur string) {
	heading(w, "RETIREMENT PAYOUT")
	fmt.Fprintf(w, "Gross capital:        %s\n", FormatMoney(p.Tax.GrossCapital, cur))
	fmt.Fprintf(w, "Contributed capital:  %s\n", FormatMoney(p.Tax.ContributedCapital, cur))
	fmt.Fprintf(w, "Taxable gain:         %s\n", FormatMoney(p.Tax.TaxableGain, cur))
	fmt.Fprintf(w, "Tax (%s):          %s\n", FormatRate(p.Tax.TaxRate), FormatMoney(p.Tax.TaxAmount, cur))
	fmt.Fprintf(w, "Net capital:          %s\n", FormatMoney(p.Tax.NetCapital, cur))
	fmt.Fprintf(w, "Horizon:              %s\n", p.Plan.Horizon)
	if p.Plan.Horizon.IsLumpSum() {
		fmt.Fprintf(w, "Lump-sum payment:     %s\n", FormatMoney(p.Plan.FinalPayout, cur))
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "Payout rate:          %s annual, %s monthly\n", FormatRate(p.Plan.AnnualRate), FormatRatePrecise(p.Plan.PeriodicRate, 4))
	fmt.Fprintf(w, "Monthly payout:       %s\n", FormatMoney(p.Plan.MonthlyPayout, cur))
	if !p.Plan.Horizon.IsPerpetual() {
		if !p.Plan.FinalPayout.Equal(p.Plan.MonthlyPayout) {
			fmt.Fprintf(w, "Final payment:        %s\n", FormatMoney(p.Plan.FinalPayout, cur))
		}
		fmt.Fprintf(w, "Total paid out:       %s\n", FormatMoney(p.Plan.TotalPaidOut, cur))
	}
	fmt.Fprintf(w, "Residual capital:     %s\n", FormatMoney(p.Plan.ResidualCapital, cur))
	fmt.Fprintln(w)
}

func writeBondSection(w io.Writer, b domain.BondReport, cur string) {
	v := b.Valuation
	title := "BOND VALUATION"
	if v.Name != "" {
		title += ": " + v.Name
	}
	heading(w, title)
	fmt.Fprintf(w, "Face value:       %s\n", FormatMoney(v.FaceValue, cur))
	fmt.Fprintf(w, "Frequency:        %s (%d periods)\n", v.Frequency, v.NumPeriods)
	fmt.Fprintf(w, "Coupon rate:      %s per period, %s per coupon\n", FormatRatePrecise(v.CouponPeriodicRate, 4), FormatMoney(v.CouponPerPeriod, cur))
	fmt.Fprintf(w, "Discount rate:    %s annual, %s per period\n", FormatRate(v.AnnualDiscountRate), FormatRatePrecise(v.DiscountPeriodicRate, 4))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-7s %14s %14s %16s %10s %16s %18s\n", "Period", "Coupon", "Principal", "Cash Flow", "Factor", "Present Value", "Cumulative PV")
	for _, cf := range v.Schedule {
		fmt.Fprintf(w, "%-7d %14s %14s %16s %10s %16s %18s\n",
			cf.PeriodIndex,
			FormatMoney(cf.Coupon, cur),
			FormatMoney(cf.Principal, cur),
			FormatMoney(cf.NominalCashFlow, cur),
			cf.DiscountFactor.StringFixed(6),
			FormatMoney(cf.PresentValue, cur),
			FormatMoney(cf.CumulativePresent, cur),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total nominal cash flow: %s\n", FormatMoney(v.TotalNominal, cur))
	fmt.Fprintf(w, "PV of coupons:           %s\n", FormatMoney(v.CouponsPresentValue, cur))
	fmt.Fprintf(w, "PV of principal:         %s\n", FormatMoney(v.PrincipalPresent, cur))
	fmt.Fprintf(w, "Present value (price):   %s\n", FormatMoney(v.PresentValue, cur))
	fmt.Fprintf(w, "Classification:          %s\n", strings.ToUpper(string(v.Classification)))
	if b.Yield != nil {
		fmt.Fprintf(w, "Rate for price %s:  %s (%d iterations)\n", FormatMoney(b.Yield.TargetPrice, cur), FormatRatePrecise(b.Yield.AnnualDiscountRate, 4), b.Yield.Iterations)
	}
	fmt.Fprintln(w)

	if len(b.Sensitivity) > 0 {
		fmt.Fprintln(w, "Price sensitivity:")
		fmt.Fprintf(w, "%-10s %18s\n", "Rate", "Price")
		for _, sp := range b.Sensitivity {
			fmt.Fprintf(w, "%-10s %18s\n", FormatRate(sp.AnnualDiscountRate), FormatMoney(sp.PresentValue, cur))
		}
		fmt.Fprintln(w)
	}
}
