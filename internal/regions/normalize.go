// Package regions canonicalizes geographic region labels and resolves route
// endpoints against the configured focus sets.
package regions

import "strings"

// gulfMiddleEast is the canonical label for the consolidated Gulf/Middle
// East bloc. The schedule source labels these flights inconsistently as
// either GULF or MIDDLE EAST; the two markets are analyzed as one.
const gulfMiddleEast = "GULF & MIDDLE EAST"

// Normalize returns the canonical form of a raw region label:
//   - surrounding whitespace is trimmed and the label upper-cased
//   - GULF and MIDDLE EAST both canonicalize to "GULF & MIDDLE EAST"
//   - every other label passes through unchanged (apart from casing)
//
// Normalize is idempotent: applying it to its own output is a no-op.
func Normalize(raw string) string {
	label := strings.ToUpper(strings.TrimSpace(raw))
	if label == "GULF" || label == "MIDDLE EAST" {
		return gulfMiddleEast
	}

	return label
}
