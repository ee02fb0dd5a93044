package flightapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"aerolog-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lookupBody = `{
	"pagination": {"limit": 5, "offset": 0, "count": 1, "total": 1},
	"data": [{
		"flight_date": "2025-06-01",
		"flight_status": "active",
		"departure": {"airport": "Sydney Kingsford Smith Airport", "iata": "SYD", "scheduled": "2025-06-01T14:30:00+10:00"},
		"arrival": {"airport": "Los Angeles International Airport", "iata": "LAX", "scheduled": "2025-06-01T06:30:00-07:00", "baggage": "T4"},
		"airline": {"name": "Qantas Airways", "iata": "QF"},
		"flight": {"number": "11", "iata": "QF11"},
		"live": {"latitude": -21.5, "longitude": 162.3, "is_ground": false}
	}]
}`

func TestLookup(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"access_key":  r.URL.Query().Get("access_key"),
			"flight_iata": r.URL.Query().Get("flight_iata"),
			"limit":       r.URL.Query().Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lookupBody))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret", 5, logger.NewNop())

	results, err := client.Lookup(context.Background(), "qf11")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "secret", gotQuery["access_key"])
	assert.Equal(t, "QF11", gotQuery["flight_iata"], "flight code is uppercased on the wire")
	assert.Equal(t, "5", gotQuery["limit"])

	r := results[0]
	assert.Equal(t, "active", r.FlightStatus)
	require.NotNil(t, r.Departure.IATA)
	assert.Equal(t, "SYD", *r.Departure.IATA)
	require.NotNil(t, r.Arrival.Baggage)
	assert.Equal(t, "T4", *r.Arrival.Baggage)
	require.NotNil(t, r.Live)
	assert.Equal(t, -21.5, *r.Live.Latitude)
	require.NotNil(t, r.Live.IsGround)
	assert.False(t, *r.Live.IsGround)
	assert.True(t, r.IsAirborne())
}

func TestLookupLiveOmitsLimit(t *testing.T) {
	var limit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret", 5, logger.NewNop())

	results, err := client.LookupLive(context.Background(), "QF11")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, limit, "live lookups must not be cut off by pagination")
}

func TestLookupMissingAPIKey(t *testing.T) {
	client := NewHTTPClient("http://example.invalid", "", 5, logger.NewNop())

	_, err := client.Lookup(context.Background(), "QF11")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestLookupNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "usage limit reached", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret", 5, logger.NewNop())

	_, err := client.Lookup(context.Background(), "QF11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLookupMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret", 5, logger.NewNop())

	_, err := client.Lookup(context.Background(), "QF11")
	assert.Error(t, err)
}
