package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/pkg/logger"
)

// ErrAPIKeyMissing marks an unconfigured weather credential. There is no
// fallback on this path; callers surface it as "unable to load weather".
var ErrAPIKeyMissing = errors.New("weatherapi: API key not configured")

// Client fetches current conditions for a coordinate
type Client interface {
	FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherReport, error)
}

// HTTPClient implements Client against the weatherapi.com REST API
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// NewHTTPClient creates a new weather API client
func NewHTTPClient(baseURL, apiKey string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: log,
	}
}

type apiResponse struct {
	Location struct {
		Name      string `json:"name"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		WindKph   float64 `json:"wind_kph"`
		Humidity  int     `json:"humidity"`
		VisKm     float64 `json:"vis_km"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// FetchCurrent returns current conditions at the coordinate. Any failure here
// is soft for the caller; flight display never depends on weather.
func (c *HTTPClient) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherReport, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude))
	params.Set("aqi", "no")

	reqURL := c.baseURL + "/current.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &entity.WeatherReport{
		Location: entity.LocationInfo{
			Name:      decoded.Location.Name,
			Country:   decoded.Location.Country,
			LocalTime: decoded.Location.Localtime,
		},
		Current: entity.CurrentWeather{
			TemperatureC: decoded.Current.TempC,
			Descriptions: []string{decoded.Current.Condition.Text},
			Icons:        []string{SymbolName(decoded.Current.Condition.Text)},
			WindKph:      int(decoded.Current.WindKph),
			Humidity:     decoded.Current.Humidity,
			VisibilityKm: int(decoded.Current.VisKm),
		},
	}

	c.logger.Debug("Weather fetched",
		"location", report.Location.Name,
		"tempC", report.Current.TemperatureC)

	return report, nil
}

// SymbolName maps a condition description to a display icon name
func SymbolName(condition string) string {
	text := strings.ToLower(condition)
	switch {
	case strings.Contains(text, "rain"):
		return "cloud.rain"
	case strings.Contains(text, "thunder"):
		return "cloud.bolt.rain"
	case strings.Contains(text, "snow"):
		return "cloud.snow"
	case strings.Contains(text, "cloud"), strings.Contains(text, "overcast"):
		return "cloud"
	case strings.Contains(text, "sunny"), strings.Contains(text, "clear"):
		return "sun.max"
	case strings.Contains(text, "mist"), strings.Contains(text, "fog"):
		return "cloud.fog"
	default:
		return "cloud.sun"
	}
}
