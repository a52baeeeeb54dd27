// Package aggregate sums a volume metric (departures, slots) per market,
// time period and airline group, with double-counting prevention: a row
// contributes to exactly one (market, period, group) cell or is excluded and
// counted, never split or duplicated.
package aggregate

import (
	"sort"

	"airhhi/pkg/domain"
)

// Key identifies one market observation cell: a market (airport code or
// route identifier) in one time period (season or year).
type Key struct {
	Market string
	Period string
}

// Aggregator accumulates volumes. The zero value is not usable; call New.
// It is not safe for concurrent use; each run builds its own aggregator,
// consumes an immutable input snapshot and leaves the totals frozen.
type Aggregator struct {
	totals   map[Key]map[domain.GroupName]float64
	excluded int
}

// New returns an empty aggregator.
func New() *Aggregator {
	return &Aggregator{totals: map[Key]map[domain.GroupName]float64{}}
}

// Add contributes volume to the (key, group) cell. Attribution to group and
// key must already be unique (classifier + resolver); Add itself never
// splits a contribution.
func (a *Aggregator) Add(key Key, group domain.GroupName, volume float64) {
	cell, ok := a.totals[key]
	if !ok {
		cell = map[domain.GroupName]float64{}
		a.totals[key] = cell
	}
	cell[group] += volume
}

// Exclude counts a row dropped because it could not be attributed to any
// market (endpoint outside the focus sets). Excluded rows never appear as
// zero-volume markets.
func (a *Aggregator) Exclude() {
	a.excluded++
}

// Excluded returns the number of excluded rows.
func (a *Aggregator) Excluded() int {
	return a.excluded
}

// Volumes returns the per-group volumes observed for key. The returned map
// is a copy; the aggregated totals stay immutable after aggregation.
func (a *Aggregator) Volumes(key Key) map[domain.GroupName]float64 {
	cell, ok := a.totals[key]
	if !ok {
		return nil
	}

	out := make(map[domain.GroupName]float64, len(cell))
	for g, v := range cell {
		out[g] = v
	}

	return out
}

// Volume returns one group's volume for key (0 when unobserved).
func (a *Aggregator) Volume(key Key, group domain.GroupName) float64 {
	return a.totals[key][group]
}

// Total returns the summed volume across all groups for key.
func (a *Aggregator) Total(key Key) float64 {
	var sum float64
	for _, v := range a.totals[key] {
		sum += v
	}

	return sum
}

// Keys returns all observed keys sorted by market then period, so table
// output is deterministic.
func (a *Aggregator) Keys() []Key {
	keys := make([]Key, 0, len(a.totals))
	for k := range a.totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Market != keys[j].Market {
			return keys[i].Market < keys[j].Market
		}

		return keys[i].Period < keys[j].Period
	})

	return keys
}

// Markets returns the distinct markets observed, sorted.
func (a *Aggregator) Markets() []string {
	seen := map[string]struct{}{}
	for k := range a.totals {
		seen[k.Market] = struct{}{}
	}
	markets := make([]string, 0, len(seen))
	for m := range seen {
		markets = append(markets, m)
	}
	sort.Strings(markets)

	return markets
}

// Groups returns the distinct groups observed across all keys, in canonical
// order: predefined groups first, then New Entrants, then Unclassified.
func (a *Aggregator) Groups() []domain.GroupName {
	seen := map[domain.GroupName]struct{}{}
	for _, cell := range a.totals {
		for g := range cell {
			seen[g] = struct{}{}
		}
	}

	ordered := append(domain.PredefinedGroups(), domain.GroupNewEntrants, domain.GroupUnclassified)
	out := make([]domain.GroupName, 0, len(seen))
	for _, g := range ordered {
		if _, ok := seen[g]; ok {
			out = append(out, g)
		}
	}

	return out
}
