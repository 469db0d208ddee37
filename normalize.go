package blend

import (
	"strconv"
	"strings"
)

// This file normalizes the two raw columns extracted from a fund file.
//
// Codes may have been mangled upstream (numeric codes read as floats grow a
// trailing ".0"), and weights come in three encodings in the wild: a fraction
// (0.123), percentage points (12.3) or an explicit percent string ("12.3%").

// NormalizeCode returns the canonical form of a raw security code: trimmed of
// surrounding whitespace and of a trailing ".0" left by a float conversion.
// It is idempotent and applies no further validation, the code format itself
// is domain-defined.
func NormalizeCode(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".0")
}

// NormalizeWeights converts a whole raw weight column to fractions in [0,1].
//
// Per cell: drop any "%" marker, trim, parse as a number. Unparseable cells
// become 0 rather than an error, they are filtered out later by the
// positive-weight rule.
//
// Across the column: when the maximum parsed value exceeds 1, every value is
// divided by 100, on the reading that the column is expressed in percentage
// points. This is a single column-wide decision. A column mixing conventions
// (say "12.3" meaning 12.3% next to "0.05" meaning 5%) is not disambiguated
// per row; this is a known accuracy limitation, kept for compatibility with
// the historical behavior.
func NormalizeWeights(raw []string) []float64 {
	weights := make([]float64, len(raw))
	max := 0.0
	for i, cell := range raw {
		s := strings.ReplaceAll(cell, "%", "")
		s = strings.TrimSpace(s)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = 0
		}
		weights[i] = v
		if v > max {
			max = v
		}
	}
	if max > 1.0 {
		for i := range weights {
			weights[i] /= 100.0
		}
	}
	return weights
}
