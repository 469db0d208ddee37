// Package renderer formats blending results as markdown for the console.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/blend"
)

// TopMarkdown renders the leading n rows of the blended portfolio as a
// markdown table. When pct is true, a percentage column is added next to the
// fractional total.
func TopMarkdown(p *blend.Portfolio, n int, pct bool) string {
	if n > len(p.Rows) {
		n = len(p.Rows)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Top %d blended holdings\n\n", n)

	fmt.Fprintf(&b, "| # | Code | Total |")
	if pct {
		fmt.Fprintf(&b, " Pct |")
	}
	fmt.Fprintf(&b, " In |")
	for _, f := range p.Funds {
		fmt.Fprintf(&b, " %s |", f)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "|---:|:---|---:|")
	if pct {
		fmt.Fprintf(&b, "---:|")
	}
	fmt.Fprintf(&b, "---:|")
	for range p.Funds {
		fmt.Fprintf(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for i, row := range p.Rows[:n] {
		fmt.Fprintf(&b, "| %d | %s | %.6f |", i+1, row.Code, row.Total)
		if pct {
			fmt.Fprintf(&b, " %s |", blend.Percent(row.Total*100))
		}
		fmt.Fprintf(&b, " %d |", row.AppearIn)
		for _, w := range row.PerFund {
			fmt.Fprintf(&b, " %.6f |", w)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// SummaryMarkdown renders the outcome of the loading phase and the resolved
// fund weights: which files loaded with how many holdings, which were
// skipped and why, and the weight each fund carries in the blend.
func SummaryMarkdown(report *blend.LoadReport, weights map[string]float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Funds in %s\n\n", report.Dir)
	fmt.Fprintln(&b, "| File | Fund | Holdings | Weight |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, fr := range report.Files {
		if fr.Skipped() {
			fmt.Fprintf(&b, "| %s | skipped: %v | | |\n", fr.Path, fr.Err)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %.6f |\n", fr.Path, fr.Fund, fr.Rows, weights[fr.Fund])
	}
	return b.String()
}

// FundsMarkdown renders one line per loaded fund table: name, number of
// holdings and the sum of its weights. The sum is informative; a well-formed
// fund is close to 1 but nothing enforces it.
func FundsMarkdown(tables map[string]*blend.FundTable) string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# Loaded fund tables\n\n")
	fmt.Fprintln(&b, "| Fund | Holdings | Sum |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, name := range names {
		t := tables[name]
		fmt.Fprintf(&b, "| %s | %d | %.6f |\n", name, t.Len(), t.Sum())
	}
	return b.String()
}
