package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/interface/flightapi"
	"aerolog-service/pkg/cache"
	"aerolog-service/pkg/logger"
	"aerolog-service/pkg/metrics"
)

// Searches span this many consecutive calendar days starting today
const searchDays = 7

// FlightSearchGateway returns candidate flights for a flight number. The
// primary path queries the lookup API; any transport, decode, or credential
// failure degrades to the deterministic demo generator rather than surfacing
// an error. The gateway is stateless per call, so abandoned searches leave
// nothing behind.
type FlightSearchGateway struct {
	api      flightapi.Client
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   logger.Logger
	now      func() time.Time
}

// NewFlightSearchGateway creates a new gateway. cache may be nil when no
// search cache is configured.
func NewFlightSearchGateway(api flightapi.Client, c cache.Cache, cacheTTL time.Duration, m *metrics.Metrics, log logger.Logger) *FlightSearchGateway {
	return &FlightSearchGateway{
		api:      api,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  m,
		logger:   log,
		now:      time.Now,
	}
}

// Search returns up to 7 daily candidate entries for the flight number. An
// empty result means the carrier prefix was not recognised anywhere; that is
// a search miss, not an error.
func (g *FlightSearchGateway) Search(ctx context.Context, flightNumber string) ([]entity.FlightSearchResult, error) {
	started := g.now()
	code := strings.ToUpper(strings.TrimSpace(flightNumber))

	cacheKey := g.searchCacheKey(code)
	if cached, ok := g.cachedResults(ctx, cacheKey); ok {
		g.metrics.SearchesTotal.WithLabelValues(metrics.SourceCache).Inc()
		return cached, nil
	}

	results, source := g.resolve(ctx, code)

	g.metrics.SearchesTotal.WithLabelValues(source).Inc()
	g.metrics.SearchDuration.Observe(g.now().Sub(started).Seconds())

	if len(results) > 0 {
		g.storeResults(ctx, cacheKey, results)
	}
	return results, nil
}

func (g *FlightSearchGateway) resolve(ctx context.Context, code string) ([]entity.FlightSearchResult, string) {
	apiResults, err := g.api.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, flightapi.ErrAPIKeyMissing) {
			g.logger.Warn("Flight API key not configured, using demo data", "flight", code)
		} else {
			g.logger.Error("Flight API lookup failed, using demo data", "flight", code, "error", err)
			g.metrics.ErrorsCount.WithLabelValues("flight_lookup").Inc()
		}
	} else if len(apiResults) > 0 {
		return g.expandSchedule(apiResults[0]), metrics.SourceAPI
	}

	demo := g.generateDemo(code)
	if len(demo) == 0 {
		return nil, metrics.SourceMiss
	}
	return demo, metrics.SourceFallback
}

// FetchLive returns the freshest record for the flight, preferring one that
// carries a real-time position. Nil without error means the result set was
// empty; callers degrade to position interpolation.
func (g *FlightSearchGateway) FetchLive(ctx context.Context, flightNumber, flightDate string) (*entity.FlightSearchResult, error) {
	code := strings.ToUpper(strings.TrimSpace(flightNumber))

	results, err := g.api.LookupLive(ctx, code)
	if err != nil {
		g.metrics.ErrorsCount.WithLabelValues("live_fetch").Inc()
		return nil, fmt.Errorf("live fetch for %s: %w", code, err)
	}

	// The requested day first, then any record with a position, then anything
	for i := range results {
		if results[i].Live != nil && results[i].FlightDate == flightDate {
			return &results[i], nil
		}
	}
	for i := range results {
		if results[i].Live != nil {
			return &results[i], nil
		}
	}
	if len(results) > 0 {
		return &results[0], nil
	}
	return nil, nil
}

// expandSchedule synthesizes 7 daily entries from the first API record. The
// free API tier has no forward schedule, so the client manufactures one: day 0
// keeps the record's status, delays and live payload; later days are plain
// "scheduled" entries with the timestamps shifted forward.
func (g *FlightSearchGateway) expandSchedule(first entity.FlightSearchResult) []entity.FlightSearchResult {
	now := g.now().UTC()

	depTime, err := time.Parse(time.RFC3339, first.Departure.Scheduled)
	if err != nil {
		depTime = now
	}
	arrTime, err := time.Parse(time.RFC3339, first.Arrival.Scheduled)
	if err != nil {
		arrTime = now
	}

	results := make([]entity.FlightSearchResult, 0, searchDays)
	for day := 0; day < searchDays; day++ {
		entry := first
		entry.FlightDate = now.AddDate(0, 0, day).Format("2006-01-02")
		entry.Departure.Scheduled = depTime.AddDate(0, 0, day).Format(time.RFC3339)
		entry.Arrival.Scheduled = arrTime.AddDate(0, 0, day).Format(time.RFC3339)
		entry.Departure.Estimated = nil
		entry.Departure.Actual = nil
		entry.Arrival.Estimated = nil
		entry.Arrival.Actual = nil

		if day > 0 {
			entry.FlightStatus = "scheduled"
			entry.Departure.Delay = nil
			entry.Arrival.Delay = nil
			entry.Live = nil
		}

		results = append(results, entry)
	}
	return results
}

var demoAirlines = map[string]string{
	"QF": "Qantas Airways",
	"VA": "Virgin Australia",
	"AA": "American Airlines",
	"CA": "Air Canada",
	"CI": "China Airlines",
	"CX": "Cathay Pacific",
	"EK": "Emirates",
	"JQ": "Jetstar Airways",
}

type demoRoute struct {
	depAirport string
	depIATA    string
	arrAirport string
	arrIATA    string
}

var demoRoutes = map[string]demoRoute{
	"QF": {"Sydney Kingsford Smith", "SYD", "Los Angeles Intl", "LAX"},
	"VA": {"Melbourne", "MEL", "Brisbane", "BNE"},
	"AA": {"Dallas/Fort Worth", "DFW", "New York JFK", "JFK"},
	"CA": {"Toronto Pearson", "YYZ", "Vancouver Intl", "YVR"},
	"CI": {"Taipei Taoyuan", "TPE", "Tokyo Narita", "NRT"},
	"CX": {"Hong Kong Intl", "HKG", "Singapore Changi", "SIN"},
	"EK": {"Dubai Intl", "DXB", "London Heathrow", "LHR"},
	"JQ": {"Sydney", "SYD", "Gold Coast", "OOL"},
}

// generateDemo builds 7 deterministic daily entries for a known carrier
// prefix. Day 0 is already airborne with a live position; day 3 carries the
// demo delay. An unknown prefix yields nothing, which surfaces upstream as
// "no flights found".
func (g *FlightSearchGateway) generateDemo(code string) []entity.FlightSearchResult {
	if len(code) < 2 {
		return nil
	}
	airlineCode := code[:2]
	number := code[2:]

	airlineName, ok := demoAirlines[airlineCode]
	if !ok {
		return nil
	}
	route, ok := demoRoutes[airlineCode]
	if !ok {
		return nil
	}

	now := g.now().UTC()
	results := make([]entity.FlightSearchResult, 0, searchDays)

	for day := 0; day < searchDays; day++ {
		date := now.AddDate(0, 0, day)

		status := "scheduled"
		if day == 0 {
			status = "active"
		}

		var depTime time.Time
		if day == 0 {
			depTime = now.Add(-3 * time.Hour)
		} else {
			depTime = time.Date(date.Year(), date.Month(), date.Day(), 14+(day%3), 30, 0, 0, time.UTC)
		}
		arrTime := depTime.Add(13 * time.Hour)

		depTerminal := "2"
		if day%2 == 0 {
			depTerminal = "1"
		}
		depGate := fmt.Sprintf("A%d", 10+day)
		arrTerminal := "B"
		arrGate := fmt.Sprintf("B%d", 20+day)
		baggage := fmt.Sprintf("Carousel %d", day+1)

		var delay *int
		if day == 3 {
			d := 15
			delay = &d
		}

		var live *entity.LiveInfo
		if day == 0 && status == "active" {
			updated := now.Format(time.RFC3339)
			live = &entity.LiveInfo{
				Updated:         &updated,
				Latitude:        floatPtr(-20.0),
				Longitude:       floatPtr(160.0),
				Altitude:        floatPtr(10668.0),
				Direction:       floatPtr(270.0),
				SpeedHorizontal: floatPtr(850.0),
				SpeedVertical:   floatPtr(0.0),
				IsGround:        boolPtr(false),
			}
		}

		utc := "UTC"
		results = append(results, entity.FlightSearchResult{
			FlightDate:   date.Format("2006-01-02"),
			FlightStatus: status,
			Departure: entity.DepartureInfo{
				Airport:   route.depAirport,
				Timezone:  &utc,
				IATA:      strPtr(route.depIATA),
				Terminal:  &depTerminal,
				Gate:      &depGate,
				Delay:     delay,
				Scheduled: depTime.Format(time.RFC3339),
			},
			Arrival: entity.ArrivalInfo{
				Airport:   route.arrAirport,
				Timezone:  &utc,
				IATA:      strPtr(route.arrIATA),
				Terminal:  &arrTerminal,
				Gate:      &arrGate,
				Baggage:   &baggage,
				Scheduled: arrTime.Format(time.RFC3339),
			},
			Airline: entity.AirlineInfo{
				Name: airlineName,
				IATA: strPtr(airlineCode),
			},
			Flight: entity.FlightInfo{
				Number: number,
				IATA:   strPtr(code),
			},
			Live: live,
		})
	}

	return results
}

func (g *FlightSearchGateway) searchCacheKey(code string) string {
	// Keyed per calendar day so the 7-day window rolls over at midnight
	return fmt.Sprintf("flight:search:%s:%s", code, g.now().UTC().Format("2006-01-02"))
}

func (g *FlightSearchGateway) cachedResults(ctx context.Context, key string) ([]entity.FlightSearchResult, bool) {
	if g.cache == nil {
		return nil, false
	}
	cached, err := g.cache.Get(ctx, key)
	if err != nil || cached == "" {
		return nil, false
	}
	var results []entity.FlightSearchResult
	if err := json.Unmarshal([]byte(cached), &results); err != nil {
		g.logger.Error("Failed to unmarshal cached search", "error", err)
		return nil, false
	}
	return results, true
}

func (g *FlightSearchGateway) storeResults(ctx context.Context, key string, results []entity.FlightSearchResult) {
	if g.cache == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := g.cache.Set(ctx, key, string(data), g.cacheTTL); err != nil {
		// Cache failures are soft; the search already succeeded
		g.logger.Warn("Failed to cache search results", "error", err)
	}
}

// EstimatePosition linearly interpolates an in-flight position between the
// departure and arrival coordinates by elapsed-time fraction. This is the
// degradation used when no live payload is available; it assumes constant
// ground speed and is presentational, not navigation-grade.
func EstimatePosition(dep, arr entity.Coordinate, departureISO, arrivalISO string, now time.Time) (entity.Coordinate, float64) {
	fraction := 0.5

	depTime, errDep := time.Parse(time.RFC3339, departureISO)
	arrTime, errArr := time.Parse(time.RFC3339, arrivalISO)
	if errDep == nil && errArr == nil && arrTime.After(depTime) {
		elapsed := now.Sub(depTime).Seconds()
		total := arrTime.Sub(depTime).Seconds()
		fraction = elapsed / total
		if fraction < 0 {
			fraction = 0
		} else if fraction > 1 {
			fraction = 1
		}
	}

	return entity.Coordinate{
		Latitude:  dep.Latitude + (arr.Latitude-dep.Latitude)*fraction,
		Longitude: dep.Longitude + (arr.Longitude-dep.Longitude)*fraction,
	}, fraction
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
