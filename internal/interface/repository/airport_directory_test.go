package repository

import (
	"context"
	"testing"

	"aerolog-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportDirectoryLookup(t *testing.T) {
	dir := NewAirportDirectory()

	airport, err := dir.GetByCode(context.Background(), "SYD")
	require.NoError(t, err)
	assert.Equal(t, "SYD", airport.IATA)
	assert.InDelta(t, -33.9399, airport.Coordinate.Latitude, 1e-4)
	assert.InDelta(t, 151.1753, airport.Coordinate.Longitude, 1e-4)

	// Same airport through its ICAO code, case-insensitively
	byICAO, err := dir.GetByCode(context.Background(), "yssy")
	require.NoError(t, err)
	assert.Equal(t, airport, byICAO)

	_, err = dir.GetByCode(context.Background(), "XXX")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAirportDirectoryCoordinateAndName(t *testing.T) {
	dir := NewAirportDirectory()

	coord, ok := dir.Coordinate("lax")
	require.True(t, ok)
	assert.InDelta(t, 33.9425, coord.Latitude, 1e-3)

	_, ok = dir.Coordinate("nowhere")
	assert.False(t, ok)

	assert.NotEmpty(t, dir.CityName("SYD"))
	assert.Empty(t, dir.CityName("nowhere"))
}

func TestAirportDirectorySkipsMalformedRows(t *testing.T) {
	csv := "country_code,region_name,iata,icao,airport,latitude,longitude\n" +
		"AU,New South Wales,SYD,YSSY,Sydney Kingsford Smith,-33.9399,151.1753\n" +
		"short,row\n" +
		"AU,Queensland,,YBBN,Missing IATA,-27.3842,153.1175\n" +
		"AU,Victoria,MEL,YMML,Melbourne,not-a-number,144.8430\n" +
		"US,California,LAX,KLAX,Los Angeles Intl,33.9425,-118.4081\n"

	dir := newAirportDirectoryFromCSV([]byte(csv))

	_, err := dir.GetByCode(context.Background(), "SYD")
	assert.NoError(t, err)
	_, err = dir.GetByCode(context.Background(), "LAX")
	assert.NoError(t, err)

	_, err = dir.GetByCode(context.Background(), "MEL")
	assert.ErrorIs(t, err, repository.ErrNotFound, "bad latitude row is skipped")
	_, err = dir.GetByCode(context.Background(), "YBBN")
	assert.ErrorIs(t, err, repository.ErrNotFound, "row without IATA is skipped")
}
