package blend

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Row is one security of the blended portfolio.
type Row struct {
	// Code is the canonical security identifier.
	Code string
	// Total is the blended weight: the dot product of the security's
	// per-fund weight vector (0 where absent) and the normalized scheme
	// weights.
	Total float64
	// AppearIn counts the funds holding this security with a strictly
	// positive weight.
	AppearIn int
	// PerFund holds the security's weight within each fund, aligned with
	// Portfolio.Funds.
	PerFund []float64
}

// Pct returns Total as a percentage rounded to 4 decimal places, the
// convenience column of the output table.
func (r Row) Pct() decimal.Decimal {
	return decimal.NewFromFloat(r.Total).Mul(decimal.NewFromInt(100)).Round(4)
}

// Portfolio is the aggregation result: one row per distinct security code,
// ranked by blended weight.
type Portfolio struct {
	// Funds lists the contributing fund names in lexical order; every
	// Row.PerFund vector is aligned with it.
	Funds []string
	Rows  []Row
}

// Combine outer-joins all fund tables on security code and blends the
// per-fund weights under the resolved scheme weights.
//
// The code universe is the union of codes over all tables; a security absent
// from a fund contributes 0 for that fund. Rows are sorted by Total
// descending with a stable sort: equal totals keep the join's natural order
// (funds in lexical order, holdings in source order). No secondary tie-break
// key is defined.
//
// Zero tables produce an empty portfolio, not an error. A security whose
// only holders carry scheme weight 0 legitimately totals 0; the row is kept
// (AppearIn is still informative) and sorts to the bottom.
func Combine(tables map[string]*FundTable, weights map[string]float64) *Portfolio {
	funds := make([]string, 0, len(tables))
	for name := range tables {
		funds = append(funds, name)
	}
	sort.Strings(funds)

	var codes []string
	seen := make(map[string]bool)
	for _, f := range funds {
		for _, h := range tables[f].Holdings() {
			if !seen[h.Code] {
				seen[h.Code] = true
				codes = append(codes, h.Code)
			}
		}
	}

	p := &Portfolio{Funds: funds, Rows: make([]Row, 0, len(codes))}
	for _, code := range codes {
		row := Row{Code: code, PerFund: make([]float64, len(funds))}
		for i, f := range funds {
			w := tables[f].Weight(code)
			row.PerFund[i] = w
			row.Total += w * weights[f]
			if w > 0 {
				row.AppearIn++
			}
		}
		p.Rows = append(p.Rows, row)
	}

	sort.SliceStable(p.Rows, func(i, j int) bool {
		return p.Rows[i].Total > p.Rows[j].Total
	})
	return p
}
