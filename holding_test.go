package blend

import (
	"math"
	"reflect"
	"testing"
)

func TestNewFundTable(t *testing.T) {
	testCases := []struct {
		name    string
		codes   []string
		weights []float64
		want    []Holding
	}{
		{
			name:    "clean table",
			codes:   []string{"X", "Y"},
			weights: []float64{0.6, 0.4},
			want:    []Holding{{"X", 0.6}, {"Y", 0.4}},
		},
		{
			name:    "duplicates merged by summation",
			codes:   []string{"X", "X"},
			weights: []float64{0.02, 0.03},
			want:    []Holding{{"X", 0.05}},
		},
		{
			name:    "empty codes dropped",
			codes:   []string{"", "Y"},
			weights: []float64{0.6, 0.4},
			want:    []Holding{{"Y", 0.4}},
		},
		{
			name:    "zero and negative weights dropped",
			codes:   []string{"X", "Y", "Z"},
			weights: []float64{0, 0.4, -0.1},
			want:    []Holding{{"Y", 0.4}},
		},
		{
			name:    "source order preserved",
			codes:   []string{"C", "A", "B"},
			weights: []float64{0.1, 0.2, 0.3},
			want:    []Holding{{"C", 0.1}, {"A", 0.2}, {"B", 0.3}},
		},
		{
			name:    "empty input",
			codes:   nil,
			weights: nil,
			want:    nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := NewFundTable("fund1", tc.codes, tc.weights)
			if got := table.Holdings(); !holdingsEqual(got, tc.want) {
				t.Errorf("Holdings() = %v, want %v", got, tc.want)
			}
			if table.Name() != "fund1" {
				t.Errorf("Name() = %q, want %q", table.Name(), "fund1")
			}
		})
	}
}

// The positive-weight rule applies after the merge, so duplicated rows whose
// sum cancels out are dropped as one.
func TestNewFundTable_mergeBeforeFilter(t *testing.T) {
	table := NewFundTable("f", []string{"X", "X"}, []float64{0.05, -0.05})
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0: duplicate sums to zero and must be dropped", table.Len())
	}
}

func TestFundTable_Weight(t *testing.T) {
	table := NewFundTable("f", []string{"X", "Y"}, []float64{0.6, 0.4})
	if got := table.Weight("X"); got != 0.6 {
		t.Errorf("Weight(X) = %v, want 0.6", got)
	}
	if got := table.Weight("absent"); got != 0 {
		t.Errorf("Weight(absent) = %v, want 0", got)
	}
	// codes dropped during cleaning must not resolve either
	dropped := NewFundTable("g", []string{"Z"}, []float64{0})
	if got := dropped.Weight("Z"); got != 0 {
		t.Errorf("Weight(Z) = %v, want 0 after the row was filtered", got)
	}
}

func TestFundTable_Sum(t *testing.T) {
	table := NewFundTable("f", []string{"X", "Y", "Z"}, []float64{0.2, 0.3, 0.5})
	if got := table.Sum(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Sum() = %v, want 1.0", got)
	}
}

func holdingsEqual(a, b []Holding) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
