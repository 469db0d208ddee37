package blend

// Holding is one (security code, weight within the fund) pair of a cleaned
// fund table. Invariant: Code is non-empty and Weight is strictly positive,
// rows violating either are dropped during table construction.
type Holding struct {
	Code   string
	Weight float64
}

// FundTable is the cleaned holdings table of a single fund, named after the
// source file. Codes are unique within a table: duplicate rows are merged by
// summing their weights. Holdings keep the order of first appearance in the
// source file.
type FundTable struct {
	name     string
	holdings []Holding
	index    map[string]int
}

// NewFundTable builds a fund table from normalized (code, weight) rows.
// Empty codes and non-positive weights are dropped, duplicated codes are
// summed. Both slices must have the same length.
func NewFundTable(name string, codes []string, weights []float64) *FundTable {
	t := &FundTable{name: name, index: make(map[string]int)}
	for i, code := range codes {
		if code == "" {
			continue
		}
		if j, ok := t.index[code]; ok {
			t.holdings[j].Weight += weights[i]
			continue
		}
		t.index[code] = len(t.holdings)
		t.holdings = append(t.holdings, Holding{Code: code, Weight: weights[i]})
	}
	// The positive-weight filter runs after the merge: duplicates must sum
	// before the rule applies.
	kept := t.holdings[:0]
	clear(t.index)
	for _, h := range t.holdings {
		if h.Weight > 0 {
			t.index[h.Code] = len(kept)
			kept = append(kept, h)
		}
	}
	t.holdings = kept
	return t
}

// Name returns the fund identifier, the source file's base name without
// extension.
func (t *FundTable) Name() string { return t.name }

// Len returns the number of holdings in the table.
func (t *FundTable) Len() int { return len(t.holdings) }

// Holdings returns the table rows in source order.
func (t *FundTable) Holdings() []Holding { return t.holdings }

// Weight returns the fund's weight for a code, 0 when the code is absent.
func (t *FundTable) Weight(code string) float64 {
	i, ok := t.index[code]
	if !ok {
		return 0
	}
	return t.holdings[i].Weight
}

// Sum returns the total of all weights in the table. A well-formed fund
// table sums close to 1, but this is reported, not enforced.
func (t *FundTable) Sum() float64 {
	var s float64
	for _, h := range t.holdings {
		s += h.Weight
	}
	return s
}
