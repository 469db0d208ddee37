package blend

import "fmt"

// Supported weighting scheme kinds.
const (
	// SchemeEqual gives every loaded fund the same weight.
	SchemeEqual = "equal"
	// SchemeExplicit uses the configured per-fund weights, normalized to 1.
	SchemeExplicit = "explicit"
)

// WeightingScheme is the declarative cross-fund weighting policy: either
// equal weight over whatever funds load, or an explicit per-fund mapping of
// raw non-negative weights. Explicit weights need not sum to 1, they are
// normalized during resolution.
type WeightingScheme struct {
	Kind    string             `toml:"kind"`
	Weights map[string]float64 `toml:"weights"`
}

// kind resolves an empty Kind from the presence of explicit weights.
func (s WeightingScheme) kind() string {
	if s.Kind == "" {
		if len(s.Weights) > 0 {
			return SchemeExplicit
		}
		return SchemeEqual
	}
	return s.Kind
}

// Resolve turns the scheme into a normalized fund → fraction mapping over
// exactly the given funds, summing to 1 (or empty when funds is empty).
// Funds absent from an explicit mapping get weight 0: they may still appear
// in the data but contribute nothing to the blend. Resolution is recomputed
// per run against the funds that actually loaded, so a fund that failed to
// load is excluded from the denominator rather than counted as zero.
func (s WeightingScheme) Resolve(funds []string) (map[string]float64, error) {
	resolved := make(map[string]float64, len(funds))
	switch kind := s.kind(); kind {
	case SchemeEqual:
		if len(funds) == 0 {
			return resolved, nil
		}
		share := 1.0 / float64(len(funds))
		for _, f := range funds {
			resolved[f] = share
		}
		return resolved, nil

	case SchemeExplicit:
		var sum float64
		for _, f := range funds {
			w := s.Weights[f]
			resolved[f] = w
			sum += w
		}
		if len(funds) == 0 {
			return resolved, nil
		}
		if sum <= 0 {
			return nil, fmt.Errorf("explicit scheme over funds %v: %w", funds, ErrInvalidWeighting)
		}
		for f := range resolved {
			resolved[f] /= sum
		}
		return resolved, nil

	default:
		return nil, fmt.Errorf("unknown weighting scheme kind %q", kind)
	}
}
