package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// PDFFormatter renders an A4 report with summary tables and the bond schedules.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	cur string
}

func (p PDFFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, pdfMarginBottom)
	doc.AliasNbPages("")

	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), cur: currencyOf(results)}
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	r.addSummaryPage(results)
	if results.Growth != nil {
		r.addGrowthTable(results.Growth)
	}
	for _, b := range results.Bonds {
		r.addBondPage(b)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) title(text string) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) row(label, value string) {
	r.pdf.CellFormat(70, 6, r.tr(label), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(pdfContentWidth-70, 6, r.tr(value), "", 1, "L", false, 0, "")
}

func (r *pdfReport) table(headers []string, widths []float64, rows [][]string) {
	header := func() {
		r.pdf.SetFillColor(70, 90, 110)
		r.pdf.SetTextColor(255, 255, 255)
		r.pdf.SetFont("Arial", "B", 8)
		for i, h := range headers {
			r.pdf.CellFormat(widths[i], 5, r.tr(h), "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetFont("Arial", "", 8)
		r.pdf.SetTextColor(50, 50, 50)
	}
	header()
	for n, cells := range rows {
		if r.pdf.GetY() > 270 {
			r.pdf.AddPage()
			header()
		}
		if n%2 == 0 {
			r.pdf.SetFillColor(252, 252, 252)
		} else {
			r.pdf.SetFillColor(240, 244, 248)
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			r.pdf.CellFormat(widths[i], 4.5, r.tr(c), "LR", 0, align, true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.CellFormat(sum(widths), 0, "", "T", 1, "", false, 0, "")
	r.pdf.Ln(4)
}

func sum(ws []float64) float64 {
	var t float64
	for _, w := range ws {
		t += w
	}
	return t
}

func (r *pdfReport) addSummaryPage(results *domain.PlanResult) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Investment Plan Report", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	sub := "Generated " + results.GeneratedAt.Format("2 January 2006")
	if results.Name != "" {
		sub = results.Name + " - " + sub
	}
	r.pdf.CellFormat(pdfContentWidth, 7, r.tr(sub), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	if results.RetirementAge > 0 {
		r.title("Investor")
		r.row("Current age", intToString(results.CurrentAge))
		r.row("Retirement age", intToString(results.RetirementAge))
		if results.RetirementDate != nil {
			r.row("Retirement date", results.RetirementDate.Format("2006-01-02"))
		}
		r.pdf.Ln(3)
	}

	if g := results.Growth; g != nil {
		r.title("Portfolio Growth")
		r.row("Mode", string(g.Mode))
		r.row("Annual / periodic rate", FormatRate(g.AnnualRate)+" / "+FormatRatePrecise(g.PeriodicRate, 4))
		r.row("Initial deposit", FormatMoney(g.InitialDeposit, r.cur))
		r.row("Total contributed", FormatMoney(g.TotalContributed, r.cur))
		r.row("Total interest", FormatMoney(g.TotalInterest, r.cur))
		r.row("Final balance", FormatMoney(g.FinalBalance, r.cur))
		r.pdf.Ln(3)
	}

	if len(results.RetirementAges) > 0 {
		r.title("Retirement Age Comparison")
		rows := make([][]string, 0, len(results.RetirementAges))
		for _, ra := range results.RetirementAges {
			rows = append(rows, []string{intToString(ra.Age), intToString(ra.HorizonYears), FormatMoney(ra.FinalBalance, r.cur)})
		}
		r.table([]string{"Age", "Years", "Projected Balance"}, []float64{25, 25, 50}, rows)
	}

	if len(results.RateComparison) > 0 {
		r.title("Rate Comparison")
		rows := make([][]string, 0, len(results.RateComparison))
		for _, rb := range results.RateComparison {
			rows = append(rows, []string{FormatRate(rb.AnnualRate), FormatMoney(rb.FinalBalance, r.cur)})
		}
		r.table([]string{"Rate", "Final Balance"}, []float64{25, 50}, rows)
	}

	if p := results.Payout; p != nil {
		r.title("Retirement Payout")
		r.row("Net capital after tax", FormatMoney(p.Tax.NetCapital, r.cur))
		r.row("Tax ("+FormatRate(p.Tax.TaxRate)+")", FormatMoney(p.Tax.TaxAmount, r.cur))
		r.row("Horizon", p.Plan.Horizon.String())
		if p.Plan.Horizon.IsLumpSum() {
			r.row("Lump-sum payment", FormatMoney(p.Plan.FinalPayout, r.cur))
		} else {
			r.row("Monthly payout", FormatMoney(p.Plan.MonthlyPayout, r.cur))
		}
		r.row("Residual capital", FormatMoney(p.Plan.ResidualCapital, r.cur))
		r.pdf.Ln(3)
	}

	r.title("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	for _, a := range assumptionsFor(results) {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+a), "", "L", false)
	}
}

func (r *pdfReport) addGrowthTable(g *domain.GrowthSeries) {
	r.pdf.AddPage()
	r.title("Growth Schedule")
	rows := make([][]string, 0, len(g.Periods))
	for _, p := range g.Periods {
		rows = append(rows, []string{
			intToString(p.PeriodIndex),
			FormatMoney(p.OpeningBalance, r.cur),
			FormatMoney(p.Contribution, r.cur),
			FormatMoney(p.InterestEarned, r.cur),
			FormatMoney(p.ClosingBalance, r.cur),
		})
	}
	r.table([]string{"Period", "Opening", "Contribution", "Interest", "Closing"}, []float64{20, 40, 35, 40, 45}, rows)
}

func (r *pdfReport) addBondPage(b domain.BondReport) {
	v := b.Valuation
	r.pdf.AddPage()
	name := "Bond Valuation"
	if v.Name != "" {
		name += ": " + v.Name
	}
	r.title(name)
	r.row("Face value", FormatMoney(v.FaceValue, r.cur))
	r.row("Coupon per period", FormatMoney(v.CouponPerPeriod, r.cur))
	r.row("Periods", fmt.Sprintf("%d (%s)", v.NumPeriods, v.Frequency))
	r.row("Discount rate", FormatRate(v.AnnualDiscountRate))
	r.row("Present value", FormatMoney(v.PresentValue, r.cur))
	r.row("Classification", strings.ToUpper(string(v.Classification)))
	if b.Yield != nil {
		r.row("Rate for target price", FormatRatePrecise(b.Yield.AnnualDiscountRate, 4))
	}
	r.pdf.Ln(3)

	rows := make([][]string, 0, len(v.Schedule))
	for _, cf := range v.Schedule {
		rows = append(rows, []string{
			intToString(cf.PeriodIndex),
			FormatMoney(cf.NominalCashFlow, r.cur),
			cf.DiscountFactor.StringFixed(6),
			FormatMoney(cf.PresentValue, r.cur),
			FormatMoney(cf.CumulativePresent, r.cur),
		})
	}
	r.table([]string{"Period", "Cash Flow", "Factor", "Present Value", "Cumulative PV"}, []float64{20, 40, 30, 45, 45}, rows)

	if len(b.Sensitivity) > 0 {
		r.title("Price Sensitivity")
		rows := make([][]string, 0, len(b.Sensitivity))
		for _, sp := range b.Sensitivity {
			rows = append(rows, []string{FormatRatePrecise(sp.AnnualDiscountRate, 2), FormatMoney(sp.PresentValue, r.cur)})
		}
		r.table([]string{"Rate", "Price"}, []float64{30, 50}, rows)
	}
}
