package domain

import (
	"sort"

	"github.com/google/uuid"
)

// GroupConflict records an airline code that appeared in more than one group
// membership table. The first definition wins; the conflict is kept for
// review.
type GroupConflict struct {
	AirlineCode string
	Kept        GroupName
	Dropped     GroupName
}

// Diagnostics accumulates the recoverable anomalies of one analysis run.
// Rows are never fatal: malformed rows are skipped, out-of-focus endpoints
// are excluded and unknown airlines are bucketed, all with a count here so
// the caller can judge data quality.
type Diagnostics struct {
	// RunID tags every table produced by the same run.
	RunID uuid.UUID

	// SkippedRows counts malformed input rows dropped during loading.
	SkippedRows int
	// ExcludedRows counts rows dropped because an endpoint resolved outside
	// the focus sets.
	ExcludedRows int
	// UnclassifiedRows counts rows whose airline matched no group table and
	// was bucketed as Unclassified.
	UnclassifiedRows int

	// Conflicts lists airline codes found in more than one membership table.
	Conflicts []GroupConflict

	unclassifiedCodes map[string]struct{}
	// Notes holds free-form messages (missing files, empty seasons, ...).
	Notes []string
}

// NewDiagnostics returns an empty diagnostics value with a fresh run ID.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		RunID:             uuid.New(),
		unclassifiedCodes: map[string]struct{}{},
	}
}

// RecordUnclassified counts a row whose airline code matched no group table.
func (d *Diagnostics) RecordUnclassified(code string) {
	d.UnclassifiedRows++
	if d.unclassifiedCodes == nil {
		d.unclassifiedCodes = map[string]struct{}{}
	}
	d.unclassifiedCodes[code] = struct{}{}
}

// UnclassifiedCodes returns the distinct unclassified airline codes, sorted.
func (d *Diagnostics) UnclassifiedCodes() []string {
	codes := make([]string, 0, len(d.unclassifiedCodes))
	for c := range d.unclassifiedCodes {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	return codes
}

// AddNote appends a free-form diagnostic message.
func (d *Diagnostics) AddNote(note string) {
	d.Notes = append(d.Notes, note)
}
