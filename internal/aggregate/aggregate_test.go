package aggregate_test

import (
	"testing"

	"airhhi/internal/aggregate"
	"airhhi/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestAddSumsPerCell(t *testing.T) {
	a := aggregate.New()
	key := aggregate.Key{Market: "FRA", Period: "S17"}

	a.Add(key, domain.GroupLufthansa, 120)
	a.Add(key, domain.GroupLufthansa, 30)
	a.Add(key, domain.GroupLowCost, 50)

	require.Equal(t, 150.0, a.Volume(key, domain.GroupLufthansa))
	require.Equal(t, 50.0, a.Volume(key, domain.GroupLowCost))
	require.Equal(t, 200.0, a.Total(key))
}

func TestGroupVolumesPartitionTotal(t *testing.T) {
	a := aggregate.New()
	key := aggregate.Key{Market: "DUS -> WESTERN EUROPE", Period: "2018"}

	contributions := []struct {
		group  domain.GroupName
		volume float64
	}{
		{domain.GroupLufthansa, 300},
		{domain.GroupLowCost, 120},
		{domain.GroupUnclassified, 15},
		{domain.GroupLufthansa, 45},
	}
	var want float64
	for _, c := range contributions {
		a.Add(key, c.group, c.volume)
		want += c.volume
	}

	var got float64
	for _, v := range a.Volumes(key) {
		got += v
	}
	require.Equal(t, want, got, "group volumes must partition the observed total exactly")
}

func TestExcludedRowsCountedNotAggregated(t *testing.T) {
	a := aggregate.New()

	a.Exclude()
	a.Exclude()

	require.Equal(t, 2, a.Excluded())
	require.Empty(t, a.Keys(), "excluded rows must not become zero-volume markets")
}

func TestVolumesReturnsCopy(t *testing.T) {
	a := aggregate.New()
	key := aggregate.Key{Market: "TXL", Period: "S19"}
	a.Add(key, domain.GroupLegacy, 10)

	vols := a.Volumes(key)
	vols[domain.GroupLegacy] = 999

	require.Equal(t, 10.0, a.Volume(key, domain.GroupLegacy), "aggregated totals are immutable once built")
}

func TestKeysSorted(t *testing.T) {
	a := aggregate.New()
	a.Add(aggregate.Key{Market: "MUC", Period: "S16"}, domain.GroupLufthansa, 1)
	a.Add(aggregate.Key{Market: "DUS", Period: "S17"}, domain.GroupLufthansa, 1)
	a.Add(aggregate.Key{Market: "DUS", Period: "S15"}, domain.GroupLufthansa, 1)

	want := []aggregate.Key{
		{Market: "DUS", Period: "S15"},
		{Market: "DUS", Period: "S17"},
		{Market: "MUC", Period: "S16"},
	}
	require.Equal(t, want, a.Keys())
}

func TestGroupsCanonicalOrder(t *testing.T) {
	a := aggregate.New()
	key := aggregate.Key{Market: "HAM", Period: "S18"}
	a.Add(key, domain.GroupUnclassified, 1)
	a.Add(key, domain.GroupNewEntrants, 1)
	a.Add(key, domain.GroupLufthansa, 1)
	a.Add(key, domain.GroupLegacy, 1)

	want := []domain.GroupName{
		domain.GroupLufthansa,
		domain.GroupLegacy,
		domain.GroupNewEntrants,
		domain.GroupUnclassified,
	}
	require.Equal(t, want, a.Groups())
}
