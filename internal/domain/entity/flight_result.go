package entity

import "strings"

// FlightSearchResult is one raw record from the flight lookup API or the demo
// generator. It is read-only input to normalization and is never stored as-is.
type FlightSearchResult struct {
	FlightDate   string        `json:"flight_date"`
	FlightStatus string        `json:"flight_status"`
	Departure    DepartureInfo `json:"departure"`
	Arrival      ArrivalInfo   `json:"arrival"`
	Airline      AirlineInfo   `json:"airline"`
	Flight       FlightInfo    `json:"flight"`
	Live         *LiveInfo     `json:"live,omitempty"`
}

type DepartureInfo struct {
	Airport   string  `json:"airport"`
	Timezone  *string `json:"timezone"`
	IATA      *string `json:"iata"`
	ICAO      *string `json:"icao"`
	Terminal  *string `json:"terminal"`
	Gate      *string `json:"gate"`
	Delay     *int    `json:"delay"`
	Scheduled string  `json:"scheduled"`
	Estimated *string `json:"estimated"`
	Actual    *string `json:"actual"`
}

type ArrivalInfo struct {
	Airport   string  `json:"airport"`
	Timezone  *string `json:"timezone"`
	IATA      *string `json:"iata"`
	ICAO      *string `json:"icao"`
	Terminal  *string `json:"terminal"`
	Gate      *string `json:"gate"`
	Baggage   *string `json:"baggage"`
	Delay     *int    `json:"delay"`
	Scheduled string  `json:"scheduled"`
	Estimated *string `json:"estimated"`
	Actual    *string `json:"actual"`
}

type AirlineInfo struct {
	Name string  `json:"name"`
	IATA *string `json:"iata"`
	ICAO *string `json:"icao"`
}

type FlightInfo struct {
	Number string  `json:"number"`
	IATA   *string `json:"iata"`
	ICAO   *string `json:"icao"`
}

// LiveInfo is the real-time position payload, present only while airborne
type LiveInfo struct {
	Updated         *string  `json:"updated"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Altitude        *float64 `json:"altitude"`
	Direction       *float64 `json:"direction"`
	SpeedHorizontal *float64 `json:"speed_horizontal"`
	SpeedVertical   *float64 `json:"speed_vertical"`
	IsGround        *bool    `json:"is_ground"`
}

// FlightSearchResponse is the lookup API's envelope
type FlightSearchResponse struct {
	Pagination *Pagination          `json:"pagination"`
	Data       []FlightSearchResult `json:"data"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// StatusClass buckets the API's free-text flight status for display
type StatusClass string

const (
	StatusScheduled StatusClass = "scheduled"
	StatusActive    StatusClass = "active"
	StatusLanded    StatusClass = "landed"
	StatusCancelled StatusClass = "cancelled"
	StatusDelayed   StatusClass = "delayed"
	StatusUnknown   StatusClass = "unknown"
)

// ClassifyStatus maps a raw status string to its display bucket
func ClassifyStatus(status string) StatusClass {
	switch strings.ToLower(status) {
	case "scheduled":
		return StatusScheduled
	case "active", "en-route":
		return StatusActive
	case "landed":
		return StatusLanded
	case "cancelled":
		return StatusCancelled
	case "delayed":
		return StatusDelayed
	default:
		return StatusUnknown
	}
}

// IsAirborne reports whether the result describes a flight currently en route
func (r FlightSearchResult) IsAirborne() bool {
	return ClassifyStatus(r.FlightStatus) == StatusActive
}
