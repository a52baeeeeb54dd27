package domain

// GroupName identifies a competitive airline group. Every airline code
// resolves to exactly one group per aggregation run.
type GroupName string

const (
	// GroupLufthansa is Deutsche Lufthansa and its subsidiaries (Eurowings,
	// Swiss, Austrian, Brussels Airlines, ...).
	GroupLufthansa GroupName = "Lufthansa Group"
	// GroupAirBerlin is Air Berlin and its subsidiaries. The group ceased
	// operations in October 2017; its records remain in historical seasons.
	GroupAirBerlin GroupName = "Air Berlin Group"
	// GroupLowCost covers budget carriers (Ryanair, easyJet, Wizz, ...).
	GroupLowCost GroupName = "Low Cost Carriers"
	// GroupLegacy covers traditional full-service European carriers.
	GroupLegacy GroupName = "Legacy Carriers"
	// GroupRegional covers smaller regional and charter operators.
	GroupRegional GroupName = "Regional & Others"
	// GroupNewEntrants holds airlines newly allocated slots at an airport
	// that belong to none of the predefined groups. Membership is decided
	// per airport.
	GroupNewEntrants GroupName = "New Entrants"
	// GroupUnclassified buckets airlines that match no group table. Such
	// volume stays in the aggregation as its own group so that group volumes
	// always partition the observed total; it is surfaced in diagnostics so
	// reviewers can extend the tables.
	GroupUnclassified GroupName = "Unclassified"
)

// PredefinedGroups lists the incumbent groups in their canonical output
// order. New Entrants and Unclassified are derived per run and not part of
// this list.
func PredefinedGroups() []GroupName {
	return []GroupName{
		GroupLufthansa,
		GroupAirBerlin,
		GroupLowCost,
		GroupLegacy,
		GroupRegional,
	}
}
