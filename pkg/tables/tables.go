// Package tables holds the flat tabular result model produced by every
// analysis: an ordered header row plus string cells. Writers render a table
// as CSV or as a sheet in a single XLSX workbook; rendering is the only place
// where numbers are rounded.
package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Table is one named result table. Rows keep their append order; downstream
// consumers rely on deterministic ordering.
type Table struct {
	// Name becomes the CSV file name (without extension) and the workbook
	// sheet name.
	Name    string
	Headers []string
	Rows    [][]string
}

// New returns an empty table with the given name and header row.
func New(name string, headers ...string) *Table {
	return &Table{Name: name, Headers: headers}
}

// Append adds one row. The caller is responsible for matching the header
// arity; short rows render as empty trailing cells.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// WriteCSV renders the table to w as RFC 4180 CSV with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile writes the table as <dir>/<Name>.csv, creating dir if needed.
func WriteFile(dir string, t *Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create output dir: %w", err)
	}

	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close() //nolint: errcheck

	if err := t.WriteCSV(f); err != nil {
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}

	return path, nil
}

// FormatFloat renders a float with two decimals. Rounding happens only here,
// never inside intermediate summation.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatOptional renders a possibly-undefined value. Nil renders as an empty
// cell: an undefined ratio must stay visibly missing, not become "0.00".
func FormatOptional(v *float64) string {
	if v == nil {
		return ""
	}

	return FormatFloat(*v)
}

// FormatCount renders a volume that is integral by nature (departures,
// slots) without decimals.
func FormatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
