package blend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWeighting reports an explicit weighting scheme whose configured
// weights sum to zero or less over the loaded funds. This is a configuration
// error and aborts the run.
var ErrInvalidWeighting = errors.New("fund weights sum to zero or less")

// ErrNoValidTables reports that no usable fund table could be produced from
// the source directory. The run terminates without writing any output.
var ErrNoValidTables = errors.New("no valid fund tables")

// UnreadableFileError reports a source file that could not be parsed, even
// after the recovery read. The file is skipped and the run continues.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }

// MissingColumnError reports a source file that lacks one of the configured
// header names. It carries the headers actually found so the diagnostic can
// point at the likely misconfiguration.
type MissingColumnError struct {
	Path    string
	Column  string
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%q has no column %q (found: %s)", e.Path, e.Column, strings.Join(e.Headers, ", "))
}
