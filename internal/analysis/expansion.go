package analysis

import (
	"strconv"

	"airhhi/internal/aggregate"
	"airhhi/internal/growth"
	"airhhi/pkg/domain"
	"airhhi/pkg/tables"
)

// aggregateNetwork sums departures per (route, year, group) across the whole
// resolvable network: both endpoints go through the resolver, so a route may
// connect two focus airports, a focus airport and a region, or two regions.
// All calendar months count; the footprint is not a summer-only view. Rows
// with an unresolvable endpoint are excluded and counted.
func (r *Runner) aggregateNetwork(records []domain.FlightRecord, diag *domain.Diagnostics) *aggregate.Aggregator {
	yearSet := make(map[int]struct{}, len(r.years))
	for _, y := range r.years {
		yearSet[y] = struct{}{}
	}

	agg := aggregate.New()
	for _, rec := range records {
		if _, ok := yearSet[rec.Year]; !ok {
			continue
		}

		origin, ok := r.resolver.Resolve(rec.OriginAirport, rec.OriginRegion)
		if !ok {
			agg.Exclude()
			diag.ExcludedRows++

			continue
		}
		dest, ok := r.destinationOf(rec)
		if !ok {
			agg.Exclude()
			diag.ExcludedRows++

			continue
		}

		group := r.classifier.Classify(rec.AirlineCode)
		if group == domain.GroupUnclassified {
			diag.RecordUnclassified(rec.AirlineCode)
		}

		key := aggregate.Key{
			Market: routeKey(origin.Value, dest.Value),
			Period: strconv.Itoa(rec.Year),
		}
		agg.Add(key, group, rec.Departures)
	}

	return agg
}

// ExpansionTracking is Analysis 5: on every route the baseline group ever
// served within the configured years, track the tracked group's volume year
// over year. Emits the baseline group's own volumes per route and the
// tracked group's volumes with absolute and percentage changes.
func (r *Runner) ExpansionTracking(in ScheduleInput) (*Result, error) {
	diag := r.newDiagnostics()
	diag.SkippedRows = in.Skipped
	agg := r.aggregateNetwork(in.Records, diag)

	yearCols := make([]string, len(r.years))
	for i, y := range r.years {
		yearCols[i] = strconv.Itoa(y)
	}

	baseline := tables.New("baseline_routes", append([]string{"Route"}, yearCols...)...)
	tracked := tables.New("tracked_on_baseline", "Route", "Year", "Departures", "Delta", "Pct Change")

	for _, route := range agg.Markets() {
		if !r.baselineServed(agg, route, yearCols) {
			continue
		}

		baseRow := []string{route}
		volumes := make([]float64, len(yearCols))
		for i, year := range yearCols {
			key := aggregate.Key{Market: route, Period: year}
			baseRow = append(baseRow, tables.FormatCount(agg.Volume(key, r.baseline)))
			volumes[i] = agg.Volume(key, r.tracked)
		}
		baseline.Append(baseRow...)

		for _, g := range trackedSeries(route, r.tracked, yearCols, volumes) {
			tracked.Append(
				g.Market,
				g.Period,
				tables.FormatCount(g.Volume),
				tables.FormatOptional(g.Delta),
				tables.FormatOptional(g.PctChange),
			)
		}
	}

	return &Result{Tables: []*tables.Table{baseline, tracked}, Diagnostics: diag}, nil
}

// baselineServed reports whether the baseline group had volume on the route
// in any configured year. A route the baseline group entered late still
// belongs to its footprint.
func (r *Runner) baselineServed(agg *aggregate.Aggregator, route string, yearCols []string) bool {
	for _, year := range yearCols {
		if agg.Volume(aggregate.Key{Market: route, Period: year}, r.baseline) != 0 {
			return true
		}
	}

	return false
}

// trackedSeries turns a route's chronological volume series into growth
// results for the tracked group.
func trackedSeries(route string, group domain.GroupName, yearCols []string, volumes []float64) []domain.GrowthResult {
	out := make([]domain.GrowthResult, len(yearCols))
	for i, ch := range growth.Series(volumes) {
		out[i] = domain.GrowthResult{
			Market:    route,
			Period:    yearCols[i],
			Group:     group,
			Volume:    volumes[i],
			Delta:     ch.Delta,
			PctChange: ch.Pct,
		}
	}

	return out
}
