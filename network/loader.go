package network

import (
	"encoding/csv"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
)

// stationRow maps one station_map.csv row.
type stationRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	OpeningDate string `csv:"opening_date"`
}

// LoadFile reads the station map CSV at path and builds the network model.
// The first row is a header. Any read or parse failure is fatal to the
// caller: the service must not start on a partial network.
func LoadFile(path string, logger zerolog.Logger) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Station names in the source file carry stray leading whitespace.
	// A local reader keeps gocsv's package-global configuration untouched.
	csvReader := csv.NewReader(f)
	csvReader.TrimLeadingSpace = true
	var rows []*stationRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{ID: row.ID, Name: row.Name, OpeningDate: row.OpeningDate})
	}
	m, err := NewModel(records)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("path", path).
		Int("stations", m.NumStations()).
		Int("lines", len(m.Lines())).
		Msg("station map loaded")
	return m, nil
}
