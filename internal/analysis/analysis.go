// Package analysis implements the five market-concentration analyses on top
// of the core components: slot allocation by group, new-entrant coverage,
// airport HHI, route HHI and expansion tracking. Each analysis consumes an
// immutable snapshot of domain records and produces result tables plus a
// diagnostics summary; no analysis aborts on a bad row.
package analysis

import (
	"airhhi/internal/config"
	"airhhi/internal/groups"
	"airhhi/internal/regions"
	"airhhi/pkg/domain"
	"airhhi/pkg/serrors"
	"airhhi/pkg/tables"
)

// Result bundles the tables produced by one analysis with its diagnostics.
type Result struct {
	Tables      []*tables.Table
	Diagnostics *domain.Diagnostics
}

// SlotInputs is the slot-side input snapshot: per-airport slot records and
// per-airport new-entrant candidate codes (raw, unfiltered), plus the number
// of malformed rows the loaders dropped.
type SlotInputs struct {
	Slots    map[string][]domain.SlotRecord
	Entrants map[string][]string
	Skipped  int
}

// ScheduleInput is the schedule-side input snapshot: loaded flight records
// plus the number of malformed rows the loader dropped.
type ScheduleInput struct {
	Records []domain.FlightRecord
	Skipped int
}

// Runner holds the static configuration shared by all analyses: the group
// classifier, the endpoint resolver and the focus/period tables.
type Runner struct {
	classifier *groups.Classifier
	resolver   *regions.Resolver

	airports   []string
	airportSet map[string]struct{}
	seasons    []string
	seasonName func(string) string
	summer     map[int]struct{}
	years      []int

	tracked  domain.GroupName
	baseline domain.GroupName
}

// NewRunner builds a runner from configuration. Missing static tables
// surface as a fatal CONFIG error here, before any data is touched.
func NewRunner(cfg *config.Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	classifier, err := groups.NewClassifier()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		classifier: classifier,
		resolver:   regions.NewResolver(cfg.Analysis.FocusAirports, cfg.Analysis.FocusRegions),
		airports:   append([]string(nil), cfg.Analysis.FocusAirports...),
		airportSet: map[string]struct{}{},
		seasons:    append([]string(nil), cfg.Analysis.Seasons...),
		seasonName: cfg.SeasonName,
		summer:     map[int]struct{}{},
		years:      append([]int(nil), cfg.Analysis.Years...),
		tracked:    domain.GroupName(cfg.Analysis.TrackedGroup),
		baseline:   domain.GroupName(cfg.Analysis.BaselineGroup),
	}
	for _, a := range r.airports {
		r.airportSet[a] = struct{}{}
	}
	for _, m := range cfg.Analysis.SummerMonths {
		r.summer[m] = struct{}{}
	}

	known := map[domain.GroupName]struct{}{}
	for _, g := range domain.PredefinedGroups() {
		known[g] = struct{}{}
	}
	if _, ok := known[r.tracked]; !ok {
		return nil, serrors.With(serrors.ErrConfig, "tracked group %q matches no membership table", r.tracked)
	}
	if _, ok := known[r.baseline]; !ok {
		return nil, serrors.With(serrors.ErrConfig, "baseline group %q matches no membership table", r.baseline)
	}

	return r, nil
}

// entrantSets filters each airport's candidate list against the union of all
// predefined memberships and returns the genuine entrants as per-airport
// sets.
func (r *Runner) entrantSets(candidates map[string][]string) map[string]map[string]struct{} {
	sets := make(map[string]map[string]struct{}, len(candidates))
	for airport, codes := range candidates {
		set := map[string]struct{}{}
		for _, code := range r.classifier.FilterEntrants(codes) {
			set[code] = struct{}{}
		}
		sets[airport] = set
	}

	return sets
}

// attribute assigns an airline code to exactly one group for the given
// airport: its predefined group when it has one, New Entrants when it is a
// genuine entrant at this airport, Unclassified otherwise. Unclassified
// attributions are counted in diag.
func (r *Runner) attribute(code, airport string, entrants map[string]map[string]struct{}, diag *domain.Diagnostics) domain.GroupName {
	g := r.classifier.Classify(code)
	if g != domain.GroupUnclassified {
		return g
	}
	if set, ok := entrants[airport]; ok {
		if _, ok := set[code]; ok {
			return domain.GroupNewEntrants
		}
	}

	diag.RecordUnclassified(code)

	return domain.GroupUnclassified
}

// Conflicts returns the airline codes found in more than one membership
// table, for reporting at startup.
func (r *Runner) Conflicts() []domain.GroupConflict {
	return r.classifier.Conflicts()
}

// newDiagnostics starts a diagnostics summary pre-populated with the
// classifier's membership conflicts.
func (r *Runner) newDiagnostics() *domain.Diagnostics {
	d := domain.NewDiagnostics()
	d.Conflicts = append(d.Conflicts, r.classifier.Conflicts()...)

	return d
}

// routeKey builds the route identifier used as a market key.
func routeKey(origin, destination string) string {
	return origin + " -> " + destination
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
