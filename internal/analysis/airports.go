package analysis

import (
	"airhhi/internal/aggregate"
	"airhhi/internal/hhi"
	"airhhi/pkg/domain"
	"airhhi/pkg/tables"
)

// AirportConcentration is Analysis 3: per airport and season, group market
// shares derived from slot volumes, the HHI over those shares and its
// classification. Emits one share table per airport plus a long-format
// summary and a cross-airport comparison with a concentration trend.
func (r *Runner) AirportConcentration(in SlotInputs) (*Result, error) {
	diag := r.newDiagnostics()
	diag.SkippedRows = in.Skipped
	agg := r.aggregateSlots(in, diag)

	res := &Result{Diagnostics: diag}

	summary := tables.New("airport_summary", "Airport", "Season", "Season Name", "HHI", "Classification")
	comparison := tables.New("airport_comparison", append(append([]string{"Airport"}, r.seasons...), "Trend")...)

	for _, airport := range r.airports {
		if _, ok := in.Slots[airport]; !ok {
			continue
		}

		indices := r.airportIndices(airport, agg)
		res.Tables = append(res.Tables, r.airportShareTable(airport, agg, indices))

		compRow := []string{airport}
		var observed []float64
		for _, idx := range indices {
			compRow = append(compRow, tables.FormatOptional(idx.HHI))
			if idx.HHI != nil {
				observed = append(observed, *idx.HHI)
			}

			summary.Append(
				idx.Market,
				idx.Period,
				r.seasonName(idx.Period),
				tables.FormatOptional(idx.HHI),
				idx.Classification,
			)
		}
		comparison.Append(append(compRow, hhi.Trend(observed))...)
	}

	res.Tables = append(res.Tables, comparison, summary)

	return res, nil
}

// airportIndices computes one airport's concentration result per season, in
// season order.
func (r *Runner) airportIndices(airport string, agg *aggregate.Aggregator) []domain.HHIResult {
	indices := make([]domain.HHIResult, 0, len(r.seasons))
	for _, season := range r.seasons {
		res := domain.HHIResult{
			Market: airport,
			Period: season,
			HHI:    hhi.Index(agg.Volumes(aggregate.Key{Market: airport, Period: season})),
		}
		if res.HHI != nil {
			res.Classification = hhi.Classify(*res.HHI)
		}
		indices = append(indices, res)
	}

	return indices
}

// airportShareTable lays out one airport as metric rows by season columns:
// each group's share, then the HHI and its classification.
func (r *Runner) airportShareTable(airport string, agg *aggregate.Aggregator, indices []domain.HHIResult) *tables.Table {
	tbl := tables.New(airport+"_hhi", append([]string{"Metric"}, r.seasons...)...)

	shares := make(map[string]map[domain.GroupName]float64, len(r.seasons))
	for _, season := range r.seasons {
		if s, ok := hhi.Shares(agg.Volumes(aggregate.Key{Market: airport, Period: season})); ok {
			shares[season] = s
		}
	}

	groups := append(domain.PredefinedGroups(), domain.GroupNewEntrants, domain.GroupUnclassified)
	for _, g := range groups {
		if g == domain.GroupUnclassified && !r.hasVolume(agg, airport, g) {
			continue
		}
		row := []string{string(g) + " Share"}
		for _, season := range r.seasons {
			s, ok := shares[season]
			if !ok {
				row = append(row, "")

				continue
			}
			row = append(row, tables.FormatFloat(s[g]))
		}
		tbl.Append(row...)
	}

	hhiRow := []string{"HHI"}
	classRow := []string{"Classification"}
	for _, idx := range indices {
		hhiRow = append(hhiRow, tables.FormatOptional(idx.HHI))
		classRow = append(classRow, idx.Classification)
	}
	tbl.Append(hhiRow...)
	tbl.Append(classRow...)

	return tbl
}
