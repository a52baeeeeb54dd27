package domain

// FlightRecord is one row of the flight schedule: a scheduled connection
// operated by one airline in one calendar month. Records are immutable
// inputs; every analysis consumes them read-only.
type FlightRecord struct {
	// OriginAirport and DestinationAirport are three-letter IATA codes.
	OriginAirport      string
	DestinationAirport string

	// OriginRegion and DestinationRegion are the raw region labels from the
	// schedule. They may be inconsistent (e.g. GULF vs MIDDLE EAST) and must
	// go through the region normalizer before endpoint resolution.
	OriginRegion      string
	DestinationRegion string

	// AirlineCode is the IATA code of the operating airline.
	AirlineCode string
	// AirlineName is the operating airline's full name, when the schedule
	// provides it. Only used for diagnostics output.
	AirlineName string

	Year  int
	Month int

	// Departures is the number of scheduled departures for this row.
	Departures float64

	// Share is the airline's market share percentage as reported by the
	// schedule source. Optional; the core recomputes shares from volumes and
	// never reads this field.
	Share float64
}

// SlotRecord is one slot allocation: the number of airport slots held by one
// airline at one airport for one scheduling season (e.g. S17 = Summer 2017).
type SlotRecord struct {
	Airport     string
	Season      string
	AirlineCode string
	Slots       float64
}
