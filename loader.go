package blend

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/etnz/blend/tabular"
)

// LoadFund reads one fund file into a cleaned table: read the raw rows,
// locate the configured code and weight columns, normalize both, then filter
// and merge per the FundTable rules. The fund name is the file's base name
// without extension.
//
// Failures return *UnreadableFileError or *MissingColumnError; the caller is
// expected to skip the file, not abort the batch.
func LoadFund(path string, cfg Config) (*FundTable, error) {
	tb, err := tabular.ReadFile(path, cfg.Sheet)
	if err != nil {
		return nil, &UnreadableFileError{Path: path, Err: err}
	}

	rawCodes, ok := tb.Column(cfg.CodeColumn)
	if !ok {
		return nil, &MissingColumnError{Path: path, Column: cfg.CodeColumn, Headers: tb.Headers}
	}
	rawWeights, ok := tb.Column(cfg.WeightColumn)
	if !ok {
		return nil, &MissingColumnError{Path: path, Column: cfg.WeightColumn, Headers: tb.Headers}
	}

	codes := make([]string, len(rawCodes))
	for i, c := range rawCodes {
		codes[i] = NormalizeCode(c)
	}
	weights := NormalizeWeights(rawWeights)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewFundTable(name, codes, weights), nil
}

// FileReport records the outcome of loading one source file.
type FileReport struct {
	Path string
	Fund string // fund name, empty when the file was skipped
	Rows int    // holdings kept after cleaning
	Err  error  // skip reason, nil when the file loaded
}

// Skipped reports whether the file was excluded from the run.
func (r FileReport) Skipped() bool { return r.Err != nil }

// LoadReport is the per-file account of a LoadDir call, in the order the
// files were attempted.
type LoadReport struct {
	Dir   string
	Files []FileReport
}

// Loaded returns the number of files that produced a usable fund table.
func (r *LoadReport) Loaded() int {
	n := 0
	for _, f := range r.Files {
		if !f.Skipped() {
			n++
		}
	}
	return n
}

// LoadDir loads every *.xlsx and *.csv file of dir, in lexical order, into
// fund tables. Files that cannot be read, lack a configured column, or yield
// no holdings after cleaning are skipped and accounted for in the report;
// they never abort the batch. Each file is loaded independently, so one
// malformed fund cannot corrupt another.
//
// The returned error only reports a failure to list the directory itself.
func LoadDir(dir string, cfg Config) (map[string]*FundTable, *LoadReport, error) {
	var paths []string
	for _, pattern := range []string{"*.xlsx", "*.csv"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, nil, fmt.Errorf("cannot list %q: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	tables := make(map[string]*FundTable)
	report := &LoadReport{Dir: dir}
	for _, path := range paths {
		t, err := LoadFund(path, cfg)
		if err == nil && t.Len() == 0 {
			err = fmt.Errorf("%q has no usable holdings", path)
		}
		if err != nil {
			report.Files = append(report.Files, FileReport{Path: path, Err: err})
			continue
		}
		tables[t.Name()] = t
		report.Files = append(report.Files, FileReport{Path: path, Fund: t.Name(), Rows: t.Len()})
	}
	return tables, report, nil
}
