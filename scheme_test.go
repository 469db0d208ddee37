package blend

import (
	"errors"
	"math"
	"testing"
)

func TestWeightingScheme_Resolve_equal(t *testing.T) {
	for _, funds := range [][]string{
		{"fundA"},
		{"fundA", "fundB"},
		{"a", "b", "c", "d", "e", "f", "g"},
	} {
		scheme := WeightingScheme{Kind: SchemeEqual}
		got, err := scheme.Resolve(funds)
		if err != nil {
			t.Fatalf("Resolve(%v) error = %v", funds, err)
		}
		share := 1.0 / float64(len(funds))
		var sum float64
		for _, f := range funds {
			if math.Abs(got[f]-share) > 1e-12 {
				t.Errorf("Resolve(%v)[%s] = %v, want %v", funds, f, got[f], share)
			}
			sum += got[f]
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Resolve(%v) sums to %v, want 1", funds, sum)
		}
	}
}

func TestWeightingScheme_Resolve_equalNoFunds(t *testing.T) {
	got, err := WeightingScheme{Kind: SchemeEqual}.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve(nil) = %v, want an empty mapping", got)
	}
}

func TestWeightingScheme_Resolve_explicit(t *testing.T) {
	testCases := []struct {
		name    string
		weights map[string]float64
		funds   []string
		want    map[string]float64
	}{
		{
			name:    "normalizes to one",
			weights: map[string]float64{"fundA": 2, "fundB": 3},
			funds:   []string{"fundA", "fundB"},
			want:    map[string]float64{"fundA": 0.4, "fundB": 0.6},
		},
		{
			name:    "zero weight fund stays in the output",
			weights: map[string]float64{"fundA": 2, "fundB": 0},
			funds:   []string{"fundA", "fundB"},
			want:    map[string]float64{"fundA": 1.0, "fundB": 0.0},
		},
		{
			name:    "unconfigured fund gets zero",
			weights: map[string]float64{"fundA": 5},
			funds:   []string{"fundA", "fundB"},
			want:    map[string]float64{"fundA": 1.0, "fundB": 0.0},
		},
		{
			name:    "failed funds excluded from the denominator",
			weights: map[string]float64{"fundA": 1, "gone": 9},
			funds:   []string{"fundA"},
			want:    map[string]float64{"fundA": 1.0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scheme := WeightingScheme{Kind: SchemeExplicit, Weights: tc.weights}
			got, err := scheme.Resolve(tc.funds)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Resolve() = %v, want %v", got, tc.want)
			}
			var sum float64
			for f, w := range tc.want {
				if math.Abs(got[f]-w) > 1e-9 {
					t.Errorf("Resolve()[%s] = %v, want %v", f, got[f], w)
				}
				sum += got[f]
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("Resolve() sums to %v, want 1", sum)
			}
		})
	}
}

func TestWeightingScheme_Resolve_invalid(t *testing.T) {
	testCases := []struct {
		name    string
		weights map[string]float64
		funds   []string
	}{
		{
			name:    "all zero",
			weights: map[string]float64{"fundA": 0, "fundB": 0},
			funds:   []string{"fundA", "fundB"},
		},
		{
			name:    "no loaded fund configured",
			weights: map[string]float64{"other": 1},
			funds:   []string{"fundA"},
		},
		{
			name:    "negative sum",
			weights: map[string]float64{"fundA": -1, "fundB": 0.5},
			funds:   []string{"fundA", "fundB"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scheme := WeightingScheme{Kind: SchemeExplicit, Weights: tc.weights}
			_, err := scheme.Resolve(tc.funds)
			if !errors.Is(err, ErrInvalidWeighting) {
				t.Errorf("Resolve() error = %v, want ErrInvalidWeighting", err)
			}
		})
	}
}

func TestWeightingScheme_kindInference(t *testing.T) {
	if got, _ := (WeightingScheme{}).Resolve([]string{"a", "b"}); math.Abs(got["a"]-0.5) > 1e-12 {
		t.Errorf("empty scheme should behave as equal, got %v", got)
	}
	s := WeightingScheme{Weights: map[string]float64{"a": 2}}
	got, err := s.Resolve([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got["a"] != 1 || got["b"] != 0 {
		t.Errorf("scheme with weights should behave as explicit, got %v", got)
	}
}

func TestWeightingScheme_unknownKind(t *testing.T) {
	if _, err := (WeightingScheme{Kind: "market-cap"}).Resolve([]string{"a"}); err == nil {
		t.Error("Resolve() with an unknown kind should fail")
	}
}
