package flightapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/pkg/logger"
)

// ErrAPIKeyMissing marks an unconfigured credential. It is a configuration
// problem, distinct from transport failures, and only the primary search path
// reports it.
var ErrAPIKeyMissing = errors.New("flightapi: API key not configured")

// Client fetches raw flight records from the lookup API
type Client interface {
	Lookup(ctx context.Context, flightIATA string) ([]entity.FlightSearchResult, error)
	LookupLive(ctx context.Context, flightIATA string) ([]entity.FlightSearchResult, error)
}

// HTTPClient implements Client against the aviationstack-style REST API
type HTTPClient struct {
	baseURL    string
	apiKey     string
	limit      int
	httpClient *http.Client
	logger     logger.Logger
}

// NewHTTPClient creates a new flight API client
func NewHTTPClient(baseURL, apiKey string, limit int, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		limit:   limit,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// Lookup queries the API by flight IATA code with the configured result limit
func (c *HTTPClient) Lookup(ctx context.Context, flightIATA string) ([]entity.FlightSearchResult, error) {
	return c.query(ctx, flightIATA, c.limit)
}

// LookupLive queries without a limit so a record carrying a live position is
// not cut off by pagination
func (c *HTTPClient) LookupLive(ctx context.Context, flightIATA string) ([]entity.FlightSearchResult, error) {
	return c.query(ctx, flightIATA, 0)
}

func (c *HTTPClient) query(ctx context.Context, flightIATA string, limit int) ([]entity.FlightSearchResult, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("flight_iata", strings.ToUpper(flightIATA))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight API returned status %d", resp.StatusCode)
	}

	var response entity.FlightSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode flight API response: %w", err)
	}

	c.logger.Debug("Flight API lookup completed",
		"flight", flightIATA,
		"results", len(response.Data))

	return response.Data, nil
}
