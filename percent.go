package blend

import "fmt"

// Percent is a blended weight expressed in percentage points (55 means 55%).
// It only exists for display: the pipeline itself works on fractions.
type Percent float64

// Equal compares two percentages at the display precision of four decimal
// places.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.4f%%", p)
}
