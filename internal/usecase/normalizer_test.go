package usecase

import (
	"testing"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/pkg/logger"
	"aerolog-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawResult() entity.FlightSearchResult {
	return entity.FlightSearchResult{
		FlightDate:   "2025-06-01",
		FlightStatus: "scheduled",
		Departure: entity.DepartureInfo{
			Airport:   "Sydney Kingsford Smith",
			IATA:      strPtr("SYD"),
			Scheduled: "2025-06-01T14:30:00+10:00",
		},
		Arrival: entity.ArrivalInfo{
			Airport:   "Los Angeles Intl",
			IATA:      strPtr("LAX"),
			Scheduled: "2025-06-01T06:30:00-07:00",
		},
		Airline: entity.AirlineInfo{Name: "Qantas Airways", IATA: strPtr("QF")},
		Flight:  entity.FlightInfo{Number: "11", IATA: strPtr("QF11")},
	}
}

func TestNormalize(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	got := n.Normalize(rawResult())

	assert.Equal(t, "SYD to LAX", got.Title)
	assert.Equal(t, "QF11", got.FlightNumber)
	assert.Equal(t, "SYD", got.Departure)
	assert.Equal(t, "LAX", got.Arrival)
	assert.Equal(t, "2:30 PM", got.DepartureTime)
	assert.Equal(t, "6:30 AM", got.ArrivalTime)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got.DueDate)
	assert.Equal(t, 0, got.ArrivalDayOffset)
	assert.Equal(t, entity.AirlineQantas, got.Airline)
	assert.Equal(t, "QF", got.RawAirlineCode)
}

func TestNormalizeWithExplicitTitle(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	got := n.NormalizeWithTitle(rawResult(), "Honeymoon outbound")
	assert.Equal(t, "Honeymoon outbound", got.Title)
}

func TestNormalizeFallsBackToAirportNames(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	raw := rawResult()
	raw.Departure.IATA = nil
	empty := ""
	raw.Arrival.IATA = &empty
	got := n.Normalize(raw)

	assert.Equal(t, "Sydney Kingsford Smith", got.Departure)
	assert.Equal(t, "Los Angeles Intl", got.Arrival)
	assert.Equal(t, "Sydney Kingsford Smith to Los Angeles Intl", got.Title)
}

func TestNormalizeUnparseableTimes(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	raw := rawResult()
	raw.Departure.Scheduled = "garbage"
	raw.Arrival.Scheduled = ""
	got := n.Normalize(raw)

	assert.Equal(t, "N/A", got.DepartureTime)
	assert.Equal(t, "N/A", got.ArrivalTime)
	assert.Equal(t, 0, got.ArrivalDayOffset)

	// An unreadable departure date lands the entry on today
	assert.Equal(t, utils.TruncateToDay(time.Now()), got.DueDate)
}

func TestNormalizeOvernightArrival(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	raw := rawResult()
	raw.Departure.Scheduled = "2025-01-01T22:00:00+04:00"
	raw.Arrival.Scheduled = "2025-01-02T06:00:00+00:00"
	got := n.Normalize(raw)

	assert.Equal(t, 1, got.ArrivalDayOffset)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got.DueDate)
	assert.Equal(t, "10:00 PM", got.DepartureTime)
	assert.Equal(t, "6:00 AM", got.ArrivalTime)
}

func TestNormalizeAirlineMatching(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	raw := rawResult()
	raw.Airline.IATA = strPtr("ek")
	got := n.Normalize(raw)
	assert.Equal(t, entity.AirlineEmirates, got.Airline)

	raw.Airline.IATA = strPtr("ZZ")
	got = n.Normalize(raw)
	assert.Equal(t, entity.DefaultAirline, got.Airline)
	assert.Equal(t, "ZZ", got.RawAirlineCode, "the raw code survives for display")

	raw.Airline.IATA = nil
	got = n.Normalize(raw)
	assert.Equal(t, entity.DefaultAirline, got.Airline)
	assert.Equal(t, "", got.RawAirlineCode)
}

func TestNormalizeFlightNumberFallback(t *testing.T) {
	n := NewFlightResultNormalizer(logger.NewNop())

	raw := rawResult()
	raw.Flight.IATA = nil
	got := n.Normalize(raw)
	require.Equal(t, "11", got.FlightNumber)
}
