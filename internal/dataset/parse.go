package dataset

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// columnIndex resolves column names case- and punctuation-insensitively:
// "Origin Airport", "origin_airport" and "OriginAirport" all canonicalize to
// "originairport".
type columnIndex struct {
	byName map[string]int
	names  []string
}

func newColumnIndex(df dataframe.DataFrame) *columnIndex {
	names := df.Names()
	idx := &columnIndex{byName: make(map[string]int, len(names)), names: names}
	for i, n := range names {
		key := canonHeader(n)
		if _, exists := idx.byName[key]; !exists {
			idx.byName[key] = i
		}
	}

	return idx
}

// find returns the index of the first candidate present in the header.
func (c *columnIndex) find(candidates ...string) (int, bool) {
	for _, cand := range candidates {
		if i, ok := c.byName[cand]; ok {
			return i, true
		}
	}

	return -1, false
}

// findPrefix returns the first column whose canonical name starts with
// prefix.
func (c *columnIndex) findPrefix(prefix string) (int, bool) {
	for i, n := range c.names {
		if strings.HasPrefix(canonHeader(n), prefix) {
			return i, true
		}
	}

	return -1, false
}

func canonHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")

	return name
}

// parseVolume reads a numeric cell tolerantly: thousands separators, percent
// signs and surrounding whitespace are stripped. Empty or unparseable cells
// count as zero volume rather than failing the row.
func parseVolume(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

// parseInt reads a required integer cell; ok is false when the cell is
// missing or not a number, which makes the row malformed.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false
	}

	// some exports write years as "2017.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}

	return 0, false
}
