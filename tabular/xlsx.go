package tabular

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads one sheet of an xlsx workbook, falling back to the
// recovery read when the strict parse fails. When both attempts fail, the
// returned error carries both causes.
func readWorkbook(path, sheet string) (*Table, error) {
	t, err := readXLSX(path, sheet)
	if err == nil {
		return t, nil
	}
	t, rerr := recoveryRead(path, sheet)
	if rerr != nil {
		return nil, errors.Join(err, rerr)
	}
	return t, nil
}

// readXLSX is the strict structured read of an xlsx workbook.
func readXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetName(0)
	}
	if name == "" {
		return nil, fmt.Errorf("%q has no sheet to read", path)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", name, path, err)
	}
	return newTable(rows), nil
}
