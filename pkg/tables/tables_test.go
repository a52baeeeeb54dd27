package tables_test

import (
	"path/filepath"
	"strings"
	"testing"

	"airhhi/pkg/tables"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	tbl := tables.New("hhi", "Market", "Period", "HHI")
	tbl.Append("FRA", "S17", "3800.00")
	tbl.Append("TXL", "S17", "")

	var sb strings.Builder
	require.NoError(t, tbl.WriteCSV(&sb))

	want := "Market,Period,HHI\nFRA,S17,3800.00\nTXL,S17,\n"
	require.Equal(t, want, sb.String())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	tbl := tables.New("coverage", "Airport", "Season", "Pct")
	tbl.Append("DUS", "S18", "41.50")

	path, err := tables.WriteFile(filepath.Join(dir, "nested"), tbl)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "nested", "coverage.csv"), path)
}

func TestFormatOptional(t *testing.T) {
	require.Equal(t, "", tables.FormatOptional(nil), "undefined value must render as an empty cell")

	v := 0.0
	require.Equal(t, "0.00", tables.FormatOptional(&v), "a defined zero is not missing")

	w := 2500.014
	require.Equal(t, "2500.01", tables.FormatOptional(&w))
}

func TestFormatCount(t *testing.T) {
	require.Equal(t, "180", tables.FormatCount(180))
	require.Equal(t, "0", tables.FormatCount(0))
}

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()

	one := tables.New("route_hhi", "Route", "Year", "HHI")
	one.Append("DUS -> WESTERN EUROPE", "2018", "5120.33")
	two := tables.New("a_table_name_well_beyond_the_sheet_limit", "X")
	two.Append("y")

	err := tables.WriteWorkbook(filepath.Join(dir, "results.xlsx"), []*tables.Table{one, two})
	require.NoError(t, err)
}
