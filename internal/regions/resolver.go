package regions

import "strings"

// Endpoint is the resolved identity of one side of a route: either a focus
// airport code or a normalized focus region name.
type Endpoint struct {
	// Value is the airport code or region name. Empty when excluded.
	Value string
	// IsRegion reports whether Value names a region rather than an airport.
	IsRegion bool
}

// Resolver maps an (airport, region) pair to an analysis endpoint using a
// fixed priority: a focus-airport match wins over a focus-region match, and
// an endpoint matching neither is excluded from all downstream aggregation.
type Resolver struct {
	airports map[string]struct{}
	regions  map[string]struct{}
}

// NewResolver builds a resolver from the configured focus sets. Region names
// are normalized on the way in, so raw configuration labels (GULF, MIDDLE
// EAST) land on their canonical bloc.
func NewResolver(focusAirports, focusRegions []string) *Resolver {
	r := &Resolver{
		airports: make(map[string]struct{}, len(focusAirports)),
		regions:  make(map[string]struct{}, len(focusRegions)),
	}
	for _, a := range focusAirports {
		r.airports[strings.ToUpper(strings.TrimSpace(a))] = struct{}{}
	}
	for _, reg := range focusRegions {
		r.regions[Normalize(reg)] = struct{}{}
	}

	return r
}

// Resolve maps an airport code and its (raw or already-normalized) region
// label to an endpoint. The rules apply in priority order:
//  1. airport code in the focus-airport set -> the airport, even when the
//     region would also match
//  2. region in the focus-region set -> the region
//  3. otherwise -> excluded (ok is false)
//
// Resolve is applied independently to each side of a route, so one route may
// pair an airport endpoint with a region endpoint.
func (r *Resolver) Resolve(airport, region string) (Endpoint, bool) {
	code := strings.ToUpper(strings.TrimSpace(airport))
	if _, ok := r.airports[code]; ok {
		return Endpoint{Value: code}, true
	}

	label := Normalize(region)
	if _, ok := r.regions[label]; ok {
		return Endpoint{Value: label, IsRegion: true}, true
	}

	return Endpoint{}, false
}
