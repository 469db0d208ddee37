package blend

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// EncodePortfolio writes the blended portfolio as UTF-8 CSV: a header row
// `code,total_weight[,total_weight_pct],appear_in,<fund...>` followed by one
// row per security in rank order. When pct is true the percentage
// convenience column (total × 100, rounded to 4 decimals) is included.
func EncodePortfolio(w io.Writer, p *Portfolio, pct bool) error {
	cw := csv.NewWriter(w)

	header := []string{"code", "total_weight"}
	if pct {
		header = append(header, "total_weight_pct")
	}
	header = append(header, "appear_in")
	header = append(header, p.Funds...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write portfolio header: %w", err)
	}

	record := make([]string, 0, len(header))
	for _, row := range p.Rows {
		record = record[:0]
		record = append(record, row.Code, formatWeight(row.Total))
		if pct {
			record = append(record, row.Pct().String())
		}
		record = append(record, strconv.Itoa(row.AppearIn))
		for _, v := range row.PerFund {
			record = append(record, formatWeight(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write row for %q: %w", row.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatWeight renders a fraction with the shortest exact representation.
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
