// Package dataset loads the analyzer's input CSVs (flight schedule, slot
// allocations, new-entrant candidate lists) into domain records. Header
// matching is tolerant and per-row parsing never aborts a load: malformed
// rows are skipped and counted for the diagnostics summary.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"airhhi/pkg/domain"
	"airhhi/pkg/serrors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Schedule is the loaded flight schedule plus the number of rows dropped as
// malformed.
type Schedule struct {
	Records []domain.FlightRecord
	Skipped int
}

// SlotFile is one airport's loaded slot allocations plus the number of rows
// dropped as malformed.
type SlotFile struct {
	Records []domain.SlotRecord
	Skipped int
}

// LoadSchedule reads the flight-schedule CSV. A row needs an airline code,
// a year and a month to be usable; rows missing any of them are skipped and
// counted. Departure cells that fail to parse count as zero volume.
func LoadSchedule(path string) (*Schedule, error) {
	df, err := readFrame(path)
	if err != nil {
		return nil, err
	}

	cols := newColumnIndex(df)
	codeCol, ok := cols.find("operatingairline", "airlinecode", "airline", "iata", "code")
	if !ok {
		return nil, serrors.With(serrors.ErrBadInput, "schedule %s has no airline code column", path)
	}
	yearCol, ok := cols.find("year")
	if !ok {
		return nil, serrors.With(serrors.ErrBadInput, "schedule %s has no year column", path)
	}
	monthCol, _ := cols.find("month")
	depCol, _ := cols.find("departures")

	originAirportCol, _ := cols.find("originairport", "origin")
	destAirportCol, _ := cols.find("destinationairport", "destination")
	originRegionCol, _ := cols.find("originregionname", "originregion")
	destRegionCol, _ := cols.find("destinationregionname", "destinationregion")
	nameCol, _ := cols.find("operatingairlinename", "airlinename")
	shareCol, _ := cols.find("share", "airlineshare")

	sched := &Schedule{}
	for i := 0; i < df.Nrow(); i++ {
		cell := func(col int) string {
			if col < 0 {
				return ""
			}

			return strings.TrimSpace(df.Elem(i, col).String())
		}

		code := strings.ToUpper(cell(codeCol))
		year, yearOK := parseInt(cell(yearCol))
		month, monthOK := parseInt(cell(monthCol))
		if code == "" || !yearOK || !monthOK {
			sched.Skipped++

			continue
		}

		rec := domain.FlightRecord{
			OriginAirport:      strings.ToUpper(cell(originAirportCol)),
			DestinationAirport: strings.ToUpper(cell(destAirportCol)),
			OriginRegion:       cell(originRegionCol),
			DestinationRegion:  cell(destRegionCol),
			AirlineCode:        code,
			AirlineName:        cell(nameCol),
			Year:               year,
			Month:              month,
			Departures:         parseVolume(cell(depCol)),
			Share:              parseVolume(cell(shareCol)),
		}
		sched.Records = append(sched.Records, rec)
	}

	return sched, nil
}

// LoadSlots reads one airport's slot CSV (<slotsDir>/<airport>.csv). Each
// input row carries one airline and one column per season; the result is
// flattened to one SlotRecord per (airline, season). Rows without an airline
// code are skipped and counted; unparseable slot cells count as zero.
func LoadSlots(slotsDir, airport string, seasons []string) (*SlotFile, error) {
	path := filepath.Join(slotsDir, airport+".csv")
	df, err := readFrame(path)
	if err != nil {
		return nil, err
	}

	cols := newColumnIndex(df)
	codeCol, ok := cols.find("airlinecode", "iata", "airlineiata", "airline", "code")
	if !ok {
		// fall back to the first column, the layout the slot files ship with
		codeCol = 0
	}

	seasonCols := make(map[string]int, len(seasons))
	for _, s := range seasons {
		if col, ok := cols.find(strings.ToLower(s)); ok {
			seasonCols[s] = col

			continue
		}
		// prefix match covers headers like "S15 Departures"
		if col, ok := cols.findPrefix(strings.ToLower(s)); ok {
			seasonCols[s] = col
		}
	}
	if len(seasonCols) == 0 {
		return nil, serrors.With(serrors.ErrBadInput, "slot file %s has no season columns", path)
	}

	sf := &SlotFile{}
	for i := 0; i < df.Nrow(); i++ {
		code := strings.ToUpper(strings.TrimSpace(df.Elem(i, codeCol).String()))
		if code == "" {
			sf.Skipped++

			continue
		}
		for _, s := range seasons {
			col, ok := seasonCols[s]
			if !ok {
				continue
			}
			sf.Records = append(sf.Records, domain.SlotRecord{
				Airport:     strings.ToUpper(airport),
				Season:      s,
				AirlineCode: code,
				Slots:       parseVolume(strings.TrimSpace(df.Elem(i, col).String())),
			})
		}
	}

	return sf, nil
}

// LoadNewEntrants reads the candidate new-entrant codes for an airport from
// <slotsDir>/<airport>_NEW_ENTRANT.csv. A missing file means no candidates;
// it is reported as ErrNotFound so the caller can note it and move on.
func LoadNewEntrants(slotsDir, airport string) ([]string, error) {
	path := filepath.Join(slotsDir, airport+"_NEW_ENTRANT.csv")
	df, err := readFrame(path)
	if err != nil {
		return nil, err
	}

	cols := newColumnIndex(df)
	col, ok := cols.find("airlinecode", "airline", "airlineiata", "iata")
	if !ok {
		if len(df.Names()) < 2 {
			return nil, serrors.With(serrors.ErrBadInput, "new-entrant file %s has no airline code column", path)
		}
		// the raw exports carry the code in the second column
		col = 1
	}

	var codes []string
	for i := 0; i < df.Nrow(); i++ {
		code := strings.ToUpper(strings.TrimSpace(df.Elem(i, col).String()))
		if code == "" || code == "NAN" {
			continue
		}
		codes = append(codes, code)
	}

	return codes, nil
}

// readFrame opens a CSV as an all-string dataframe.
func readFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dataframe.DataFrame{}, serrors.Wrap(serrors.ErrNotFound, err, "input file %s not found", path)
		}

		return dataframe.DataFrame{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close() //nolint: errcheck

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, serrors.Wrap(serrors.ErrBadInput, df.Err, "could not parse %s", path)
	}

	return df, nil
}
