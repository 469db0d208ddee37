package tabular

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// recoveryRead retries a failed workbook read with the style and theme parts
// stripped out. An xlsx file is a zip archive; corrupt presentation metadata
// (xl/styles.xml, xl/theme*) is the dominant real-world cause of parse
// failures and none of it matters for reading cell values. The reduced
// archive is written to a temporary file that is removed on every exit path.
func recoveryRead(path, sheet string) (*Table, error) {
	tmp, err := os.CreateTemp("", "tabular-recovery-*.xlsx")
	if err != nil {
		return nil, fmt.Errorf("cannot create recovery workbook: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := stripStyles(path, tmp); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	return readXLSX(tmp.Name(), sheet)
}

// stripStyles copies the workbook archive to w, omitting style parts.
func stripStyles(path string, w io.Writer) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("cannot open %q as an archive: %w", path, err)
	}
	defer zr.Close()

	zw := zip.NewWriter(w)
	for _, item := range zr.File {
		if item.Name == "xl/styles.xml" || strings.HasPrefix(item.Name, "xl/theme") {
			continue
		}
		rc, err := item.Open()
		if err != nil {
			return fmt.Errorf("cannot read part %q of %q: %w", item.Name, path, err)
		}
		out, err := zw.Create(item.Name)
		if err == nil {
			_, err = io.Copy(out, rc)
		}
		rc.Close()
		if err != nil {
			return fmt.Errorf("cannot copy part %q of %q: %w", item.Name, path, err)
		}
	}
	return zw.Close()
}
