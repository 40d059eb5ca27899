// Package renderer turns portfolio reports into markdown.
//
// Each report gets a main template plus named partials, all embedded from
// templates/. Rendering never fails the caller: template errors come back
// as the rendered string so they surface in the output instead of being
// silently dropped.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/shlok12343/stockfolio"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDistribution renders a DistributionReport to a markdown string.
func RenderDistribution(r *stockfolio.DistributionReport) string {
	partials := map[string]string{
		"distribution_title": "templates/distribution_title.md",
		"distribution_table": "templates/distribution_table.md",
	}
	return renderTemplate("distribution", "templates/distribution.md", partials, r)
}

// RenderHoldings renders a HoldingsReport to a markdown string.
func RenderHoldings(r *stockfolio.HoldingsReport) string {
	partials := map[string]string{
		"holdings_title": "templates/holdings_title.md",
		"holdings_table": "templates/holdings_table.md",
	}
	return renderTemplate("holdings", "templates/holdings.md", partials, r)
}

// RenderRebalancePlan renders a rebalancing plan preview to a markdown string.
func RenderRebalancePlan(plan *stockfolio.RebalancePlan) string {
	partials := map[string]string{
		"rebalance_title":  "templates/rebalance_title.md",
		"rebalance_trades": "templates/rebalance_trades.md",
	}
	data := struct {
		Date   string
		Trades []stockfolio.Trade
	}{plan.On().String(), plan.Trades}
	return renderTemplate("rebalance", "templates/rebalance.md", partials, data)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcMap = template.FuncMap{
	"shares": func(v float64) string { return fmt.Sprintf("%.4f", v) },
}
