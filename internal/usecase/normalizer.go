package usecase

import (
	"fmt"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/pkg/logger"
	"aerolog-service/pkg/utils"
)

// Display value for a leg whose scheduled timestamp cannot be read
const timeUnknown = "N/A"

// FlightResultNormalizer converts one raw search result into the canonical
// fields the log stores. Every field has a defined fallback, so normalization
// itself never fails; duplicate rejection and persistence are the layers that
// can.
type FlightResultNormalizer struct {
	logger logger.Logger
}

// NewFlightResultNormalizer creates a new normalizer
func NewFlightResultNormalizer(log logger.Logger) *FlightResultNormalizer {
	return &FlightResultNormalizer{
		logger: log,
	}
}

// Normalize maps a raw result, constructing the title from the route
func (n *FlightResultNormalizer) Normalize(raw entity.FlightSearchResult) entity.NormalizedFlight {
	return n.NormalizeWithTitle(raw, "")
}

// NormalizeWithTitle maps a raw result using the given title; an empty title
// falls back to "<departure> to <arrival>".
func (n *FlightResultNormalizer) NormalizeWithTitle(raw entity.FlightSearchResult, title string) entity.NormalizedFlight {
	departure := displayCode(raw.Departure.IATA, raw.Departure.Airport)
	arrival := displayCode(raw.Arrival.IATA, raw.Arrival.Airport)

	departureTime, ok := utils.ExtractLiteralTime(raw.Departure.Scheduled)
	if !ok {
		departureTime = timeUnknown
	}
	arrivalTime, ok := utils.ExtractLiteralTime(raw.Arrival.Scheduled)
	if !ok {
		arrivalTime = timeUnknown
	}

	// Falling back to today is an approximation, not silently wrong data; the
	// timestamp was unreadable and the entry still has to land somewhere.
	dueDate, ok := utils.ExtractLiteralDate(raw.Departure.Scheduled)
	if !ok {
		dueDate = utils.TruncateToDay(time.Now())
		n.logger.Warn("Unparseable departure date, using today",
			"scheduled", raw.Departure.Scheduled)
	}

	rawAirlineCode := derefString(raw.Airline.IATA)

	if title == "" {
		title = fmt.Sprintf("%s to %s", departure, arrival)
	}

	return entity.NormalizedFlight{
		Title:            title,
		FlightNumber:     displayCode(raw.Flight.IATA, raw.Flight.Number),
		Departure:        departure,
		Arrival:          arrival,
		DepartureTime:    departureTime,
		ArrivalTime:      arrivalTime,
		DueDate:          dueDate,
		ArrivalDayOffset: utils.ArrivalDayOffset(raw.Departure.Scheduled, raw.Arrival.Scheduled),
		Airline:          entity.MatchAirline(rawAirlineCode),
		RawAirlineCode:   rawAirlineCode,
	}
}

// displayCode prefers the IATA code, falling back to the full name
func displayCode(iata *string, fallback string) string {
	if iata != nil && *iata != "" {
		return *iata
	}
	return fallback
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
