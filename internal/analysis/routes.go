package analysis

import (
	"strconv"

	"airhhi/internal/aggregate"
	"airhhi/internal/hhi"
	"airhhi/internal/regions"
	"airhhi/pkg/domain"
	"airhhi/pkg/tables"
)

// aggregateRoutes sums summer departures per (route, year, group) for routes
// from a focus airport into a focus region. Airlines are attributed through
// the origin airport's entrant set, so genuine new entrants keep their own
// group on routes too. Rows outside the summer months or the configured
// years are filtered; rows whose destination region is not a focus region
// are excluded and counted.
func (r *Runner) aggregateRoutes(records []domain.FlightRecord, entrants map[string]map[string]struct{}, diag *domain.Diagnostics) *aggregate.Aggregator {
	yearSet := make(map[int]struct{}, len(r.years))
	for _, y := range r.years {
		yearSet[y] = struct{}{}
	}

	agg := aggregate.New()
	for _, rec := range records {
		if _, ok := r.summer[rec.Month]; !ok {
			continue
		}
		if _, ok := yearSet[rec.Year]; !ok {
			continue
		}
		if _, ok := r.airportSet[rec.OriginAirport]; !ok {
			agg.Exclude()
			diag.ExcludedRows++

			continue
		}

		dest, ok := r.resolver.Resolve("", rec.DestinationRegion)
		if !ok {
			agg.Exclude()
			diag.ExcludedRows++

			continue
		}

		group := r.attribute(rec.AirlineCode, rec.OriginAirport, entrants, diag)

		key := aggregate.Key{
			Market: routeKey(rec.OriginAirport, dest.Value),
			Period: strconv.Itoa(rec.Year),
		}
		agg.Add(key, group, rec.Departures)
	}

	return agg
}

// RouteConcentration is Analysis 4: HHI per route and summer season, for
// routes from a focus airport into a focus region. Destination regions are
// taken through the normalizer, so GULF and MIDDLE EAST traffic lands on one
// route. Emits a long-format HHI table, a route-by-year pivot and the
// underlying group shares.
func (r *Runner) RouteConcentration(in ScheduleInput, candidates map[string][]string) (*Result, error) {
	diag := r.newDiagnostics()
	diag.SkippedRows = in.Skipped
	agg := r.aggregateRoutes(in.Records, r.entrantSets(candidates), diag)

	yearCols := make([]string, len(r.years))
	for i, y := range r.years {
		yearCols[i] = strconv.Itoa(y)
	}

	long := tables.New("route_hhi", "Route", "Year", "HHI", "Classification")
	pivot := tables.New("route_hhi_pivot", append([]string{"Route"}, yearCols...)...)
	shares := tables.New("route_shares", "Route", "Year", "Group", "Departures", "Share")

	for _, route := range agg.Markets() {
		pivotRow := []string{route}
		for _, year := range yearCols {
			key := aggregate.Key{Market: route, Period: year}
			volumes := agg.Volumes(key)

			res := routeIndex(route, year, volumes)
			pivotRow = append(pivotRow, tables.FormatOptional(res.HHI))
			if res.HHI == nil {
				// no summer activity on this route that year
				continue
			}

			long.Append(res.Market, res.Period, tables.FormatOptional(res.HHI), res.Classification)

			groupShares, _ := hhi.Shares(volumes)
			for _, g := range agg.Groups() {
				v, ok := volumes[g]
				if !ok {
					continue
				}
				shares.Append(route, year, string(g), tables.FormatCount(v), tables.FormatFloat(groupShares[g]))
			}
		}
		pivot.Append(pivotRow...)
	}

	return &Result{Tables: []*tables.Table{long, pivot, shares}, Diagnostics: diag}, nil
}

// routeIndex computes one route-year concentration result.
func routeIndex(route, year string, volumes map[domain.GroupName]float64) domain.HHIResult {
	res := domain.HHIResult{Market: route, Period: year, HHI: hhi.Index(volumes)}
	if res.HHI != nil {
		res.Classification = hhi.Classify(*res.HHI)
	}

	return res
}

// destinationOf resolves a record's destination endpoint, airport first.
func (r *Runner) destinationOf(rec domain.FlightRecord) (regions.Endpoint, bool) {
	return r.resolver.Resolve(rec.DestinationAirport, rec.DestinationRegion)
}
