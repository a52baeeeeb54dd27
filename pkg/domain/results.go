package domain

// HHIResult is the concentration index computed for one market (airport or
// route) in one time period (season or year).
type HHIResult struct {
	Market string
	Period string

	// HHI is the Herfindahl-Hirschman Index on the 0-10000 scale. It is nil
	// when the market had no observed volume in the period; an undefined
	// index must never be coerced to 0 or 10000.
	HHI *float64

	// Classification is the concentration label for HHI, empty when HHI is
	// nil.
	Classification string
}

// GrowthResult is one period of a group's volume series on a market,
// together with the change relative to the previous period.
type GrowthResult struct {
	Market string
	Period string
	Group  GroupName

	// Volume is the group's aggregated volume in this period.
	Volume float64

	// Delta is Volume minus the previous period's volume. Nil for the first
	// observed period (no prior to compare against).
	Delta *float64

	// PctChange is 100 * Delta / previous volume. Nil when there is no prior
	// period or the prior volume was zero; a nil value is distinct from a
	// legitimate 0% change.
	PctChange *float64
}

// CoverageResult reports what share of an airport's slot volume was held by
// genuine new entrants in one season.
type CoverageResult struct {
	Airport string
	Season  string

	// CoveragePct is new-entrant slot volume as a percentage of the season's
	// total slot volume. Nil when the season had no slot volume at all.
	CoveragePct *float64

	// Compliant is true when CoveragePct is defined and at least 50.
	Compliant bool
}
