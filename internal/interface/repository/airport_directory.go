package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	_ "embed"
	"io"
	"strconv"
	"strings"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/domain/repository"
)

//go:embed data/airports.csv
var airportsCSV []byte

// AirportDirectory implements AirportRepository over the bundled reference
// dataset, loaded once at construction. Keys are IATA and ICAO codes.
type AirportDirectory struct {
	airports map[string]*entity.Airport
}

// NewAirportDirectory loads the embedded airport dataset
func NewAirportDirectory() *AirportDirectory {
	return newAirportDirectoryFromCSV(airportsCSV)
}

// Dataset columns: country_code, region_name, iata, icao, airport, lat, lon.
// The first row is a header. Malformed or short rows are skipped, never fatal.
func newAirportDirectoryFromCSV(data []byte) *AirportDirectory {
	dir := &AirportDirectory{
		airports: make(map[string]*entity.Airport),
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if first {
			first = false
			continue
		}
		if len(row) < 7 || row[2] == "" {
			continue
		}

		lat, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			continue
		}

		airport := &entity.Airport{
			IATA: row[2],
			ICAO: row[3],
			Name: row[4],
			Coordinate: entity.Coordinate{
				Latitude:  lat,
				Longitude: lon,
			},
		}
		dir.airports[strings.ToUpper(airport.IATA)] = airport
		if airport.ICAO != "" {
			dir.airports[strings.ToUpper(airport.ICAO)] = airport
		}
	}

	return dir
}

// GetByCode resolves an IATA or ICAO code, case-insensitively
func (d *AirportDirectory) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	airport, ok := d.airports[strings.ToUpper(code)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return airport, nil
}

// Coordinate is a convenience lookup for map and interpolation callers
func (d *AirportDirectory) Coordinate(code string) (entity.Coordinate, bool) {
	airport, ok := d.airports[strings.ToUpper(code)]
	if !ok {
		return entity.Coordinate{}, false
	}
	return airport.Coordinate, true
}

// CityName returns the airport's display name, or "" when unknown
func (d *AirportDirectory) CityName(code string) string {
	airport, ok := d.airports[strings.ToUpper(code)]
	if !ok {
		return ""
	}
	return airport.Name
}
