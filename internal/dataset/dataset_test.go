package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"airhhi/internal/dataset"
	"airhhi/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSchedule(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "schedule.csv",
		"Origin Airport,Destination Airport,Origin Region Name,Destination Region Name,Operating Airline,Operating Airline Name,Year,Month,Departures\n"+
			"DUS,PMI,WESTERN EUROPE,WESTERN EUROPE,AB,Air Berlin Aviation Gmbh,2016,7,\"1,240\"\n"+
			"txl,DXB,WESTERN EUROPE,GULF,ab,Air Berlin Aviation Gmbh,2017,8,310\n"+
			",PMI,WESTERN EUROPE,WESTERN EUROPE,,,,7,12\n")

	sched, err := dataset.LoadSchedule(path)
	require.NoError(t, err)
	require.Len(t, sched.Records, 2)
	require.Equal(t, 1, sched.Skipped, "the row without airline code and year is skipped, not fatal")

	first := sched.Records[0]
	require.Equal(t, "DUS", first.OriginAirport)
	require.Equal(t, "AB", first.AirlineCode)
	require.Equal(t, 2016, first.Year)
	require.Equal(t, 7, first.Month)
	require.Equal(t, 1240.0, first.Departures, "thousands separators are tolerated")

	second := sched.Records[1]
	require.Equal(t, "TXL", second.OriginAirport, "airport codes are upper-cased")
	require.Equal(t, "AB", second.AirlineCode, "airline codes are upper-cased")
	require.Equal(t, "GULF", second.DestinationRegion, "regions stay raw; normalization happens downstream")
}

func TestLoadScheduleNoCodeColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "schedule.csv", "A,B\n1,2\n")

	_, err := dataset.LoadSchedule(path)
	require.ErrorIs(t, err, serrors.ErrBadInput)
}

func TestLoadScheduleMissingFile(t *testing.T) {
	_, err := dataset.LoadSchedule(filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLoadSlots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "DUS.csv",
		"Airline Code,S15,S16,S17\n"+
			"LH,100,110,\"1,200\"\n"+
			"AB,90,80,0\n"+
			",1,2,3\n")

	sf, err := dataset.LoadSlots(dir, "DUS", []string{"S15", "S16", "S17"})
	require.NoError(t, err)
	require.Equal(t, 1, sf.Skipped)
	require.Len(t, sf.Records, 6, "one record per airline and season")

	require.Equal(t, "DUS", sf.Records[0].Airport)
	require.Equal(t, "S15", sf.Records[0].Season)
	require.Equal(t, "LH", sf.Records[0].AirlineCode)
	require.Equal(t, 100.0, sf.Records[0].Slots)
	require.Equal(t, 1200.0, sf.Records[2].Slots)
}

func TestLoadSlotsSeasonPrefixHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "FRA.csv",
		"Code,S18 Departures,S19 Departures\n"+
			"LH,500,520\n")

	sf, err := dataset.LoadSlots(dir, "FRA", []string{"S18", "S19"})
	require.NoError(t, err)
	require.Len(t, sf.Records, 2)
	require.Equal(t, 520.0, sf.Records[1].Slots)
}

func TestLoadSlotsNoSeasonColumns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "HAM.csv", "Airline Code,Total\nLH,10\n")

	_, err := dataset.LoadSlots(dir, "HAM", []string{"S15"})
	require.ErrorIs(t, err, serrors.ErrBadInput)
}

func TestLoadNewEntrants(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "TXL_NEW_ENTRANT.csv",
		"AIRPORT,AIRLINE_CODE\nTXL,W9\nTXL,zf\nTXL,\n")

	codes, err := dataset.LoadNewEntrants(dir, "TXL")
	require.NoError(t, err)
	require.Equal(t, []string{"W9", "ZF"}, codes)
}

func TestLoadNewEntrantsMissingFile(t *testing.T) {
	_, err := dataset.LoadNewEntrants(t.TempDir(), "MUC")
	require.ErrorIs(t, err, serrors.ErrNotFound, "a missing candidate file is reported, not fatal")
}
