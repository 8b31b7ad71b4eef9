package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an embedded price/rate chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"ratep": FormatRatePrecise,
	"fixed": func(d decimal.Decimal, places int32) string { return d.StringFixed(places) },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartPoint is one (rate, price) pair for the sensitivity chart.
type chartPoint struct {
	Rate  float64 `json:"rate"`
	Price float64 `json:"price"`
}

func (h HTMLFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	cur := currencyOf(results)

	charts := make(map[string][]chartPoint, len(results.Bonds))
	for _, b := range results.Bonds {
		pts := make([]chartPoint, 0, len(b.Sensitivity))
		for _, sp := range b.Sensitivity {
			pts = append(pts, chartPoint{Rate: sp.AnnualDiscountRate.InexactFloat64(), Price: sp.PresentValue.InexactFloat64()})
		}
		charts[b.Valuation.Name] = pts
	}

	data := struct {
		*domain.PlanResult
		Highlights  Highlights
		Assumptions []string
		Charts      map[string][]chartPoint
	}{results, AnalyzePlan(results), assumptionsFor(results), charts}

	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"curr": func(d decimal.Decimal) string { return FormatMoney(d, cur) },
	})
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
