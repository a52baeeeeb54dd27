package analysis

import (
	"fmt"

	"airhhi/internal/aggregate"
	"airhhi/pkg/domain"
	"airhhi/pkg/tables"
)

// aggregateSlots sums slot volumes per (airport, season, group) with the
// per-airport entrant sets applied.
func (r *Runner) aggregateSlots(in SlotInputs, diag *domain.Diagnostics) *aggregate.Aggregator {
	entrants := r.entrantSets(in.Entrants)

	agg := aggregate.New()
	for _, airport := range r.airports {
		records, ok := in.Slots[airport]
		if !ok {
			diag.AddNote(fmt.Sprintf("no slot data for %s", airport))

			continue
		}
		for _, rec := range records {
			group := r.attribute(rec.AirlineCode, airport, entrants, diag)
			agg.Add(aggregate.Key{Market: airport, Period: rec.Season}, group, rec.Slots)
		}
	}

	return agg
}

// SlotAllocation is Analysis 1: per airport, slot volumes summed per airline
// group per season. One table per airport, groups as rows and seasons as
// columns.
func (r *Runner) SlotAllocation(in SlotInputs) (*Result, error) {
	diag := r.newDiagnostics()
	diag.SkippedRows = in.Skipped
	agg := r.aggregateSlots(in, diag)

	res := &Result{Diagnostics: diag}
	rowGroups := append(domain.PredefinedGroups(), domain.GroupNewEntrants, domain.GroupUnclassified)

	for _, airport := range r.airports {
		if _, ok := in.Slots[airport]; !ok {
			continue
		}

		headers := append([]string{"Group"}, r.seasons...)
		tbl := tables.New(airport, headers...)

		for _, g := range rowGroups {
			if g == domain.GroupUnclassified && !r.hasVolume(agg, airport, g) {
				// only surface the Unclassified bucket when it holds volume
				continue
			}
			row := []string{string(g)}
			for _, season := range r.seasons {
				row = append(row, tables.FormatCount(agg.Volume(aggregate.Key{Market: airport, Period: season}, g)))
			}
			tbl.Append(row...)
		}
		res.Tables = append(res.Tables, tbl)
	}

	return res, nil
}

// EntrantCoverage is Analysis 2: per airport and season, the share of slot
// volume held by genuine new entrants, with a flag for the 50% compliance
// threshold. Coverage over a season without any slot volume is undefined and
// rendered as a missing value.
func (r *Runner) EntrantCoverage(in SlotInputs) (*Result, error) {
	diag := r.newDiagnostics()
	diag.SkippedRows = in.Skipped
	agg := r.aggregateSlots(in, diag)

	tbl := tables.New("entrant_coverage",
		"Airport", "Season", "Season Name", "New Entrant Slots", "Total Slots", "Coverage Pct", "Compliant")

	for _, airport := range r.airports {
		if _, ok := in.Slots[airport]; !ok {
			continue
		}
		for _, season := range r.seasons {
			key := aggregate.Key{Market: airport, Period: season}
			cov := coverage(agg.Volume(key, domain.GroupNewEntrants), agg.Total(key))

			tbl.Append(
				airport,
				season,
				r.seasonName(season),
				tables.FormatCount(agg.Volume(key, domain.GroupNewEntrants)),
				tables.FormatCount(agg.Total(key)),
				tables.FormatOptional(cov.CoveragePct),
				yesNo(cov.Compliant),
			)
		}
	}

	return &Result{Tables: []*tables.Table{tbl}, Diagnostics: diag}, nil
}

// coverage computes one airport-season coverage cell.
func coverage(entrantVolume, total float64) domain.CoverageResult {
	var res domain.CoverageResult
	if total == 0 {
		return res
	}

	pct := 100 * entrantVolume / total
	res.CoveragePct = &pct
	res.Compliant = pct >= 50

	return res
}

func (r *Runner) hasVolume(agg *aggregate.Aggregator, airport string, g domain.GroupName) bool {
	for _, season := range r.seasons {
		if agg.Volume(aggregate.Key{Market: airport, Period: season}, g) != 0 {
			return true
		}
	}

	return false
}
