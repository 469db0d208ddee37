// Package tabular reads a single delimited-text or spreadsheet file into a
// raw table of strings, keeping the original column headers. It knows nothing
// about funds or weights: cleaning raw values is the caller's concern.
//
// Spreadsheets whose style metadata is corrupt (a common defect of WPS and
// similar exporters) are retried through a recovery read that strips the
// offending parts from the archive before parsing again.
package tabular

import (
	"path/filepath"
	"strings"
)

// Table holds the raw content of one source file: the header row and every
// following row, all values as strings exactly as read.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Column returns the values under the given header, one per row, in row
// order. Rows shorter than the header contribute an empty string. The second
// return value reports whether the header exists; headers are matched after
// trimming surrounding whitespace.
func (t *Table) Column(name string) ([]string, bool) {
	col := -1
	for i, h := range t.Headers {
		if strings.TrimSpace(h) == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if col < len(row) {
			values[i] = row[col]
		}
	}
	return values, true
}

// newTable splits raw rows into header and body. A UTF-8 byte order mark on
// the very first cell is dropped, CSV exports frequently carry one.
func newTable(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	headers := rows[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	return &Table{Headers: headers, Rows: rows[1:]}
}

// ReadFile reads one source file into a raw table, dispatching on the file
// extension: ".csv" is read as delimited text, anything else as an xlsx
// workbook. For workbooks, sheet selects the sheet by name; empty means the
// first sheet.
func ReadFile(path, sheet string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(path)
	}
	return readWorkbook(path, sheet)
}
