package regions_test

import (
	"testing"

	"airhhi/internal/regions"

	"github.com/stretchr/testify/require"
)

func newTestResolver() *regions.Resolver {
	return regions.NewResolver(
		[]string{"DUS", "FRA", "TXL"},
		[]string{"WESTERN EUROPE", "GULF", "MIDDLE EAST"},
	)
}

func TestResolveAirportWinsOverRegion(t *testing.T) {
	r := newTestResolver()

	// FRA is a focus airport AND Western Europe is a focus region; the
	// airport must win.
	ep, ok := r.Resolve("FRA", "WESTERN EUROPE")
	require.True(t, ok)
	require.Equal(t, "FRA", ep.Value)
	require.False(t, ep.IsRegion)
}

func TestResolveFallsBackToRegion(t *testing.T) {
	r := newTestResolver()

	ep, ok := r.Resolve("CDG", "Western Europe")
	require.True(t, ok)
	require.Equal(t, "WESTERN EUROPE", ep.Value)
	require.True(t, ep.IsRegion)
}

func TestResolveNormalizesRegion(t *testing.T) {
	r := newTestResolver()

	// the focus set was configured with the raw labels GULF and MIDDLE EAST;
	// both raw labels must resolve to the consolidated bloc.
	for _, raw := range []string{"GULF", "MIDDLE EAST", "gulf "} {
		ep, ok := r.Resolve("DXB", raw)
		require.True(t, ok, "raw label %q", raw)
		require.Equal(t, "GULF & MIDDLE EAST", ep.Value)
		require.True(t, ep.IsRegion)
	}
}

func TestResolveExcluded(t *testing.T) {
	r := newTestResolver()

	_, ok := r.Resolve("JFK", "NORTH AMERICA")
	require.False(t, ok, "an endpoint outside both focus sets is excluded, not a zero-volume market")
}

func TestResolveAirportCaseInsensitive(t *testing.T) {
	r := newTestResolver()

	ep, ok := r.Resolve(" txl ", "")
	require.True(t, ok)
	require.Equal(t, "TXL", ep.Value)
}
