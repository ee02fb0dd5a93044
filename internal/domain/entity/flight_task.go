package entity

import (
	"time"
)

// FlightTask is a tracked flight in a user's log. Times are display strings
// local to each airport, not the device; DueDate carries day granularity only.
type FlightTask struct {
	ID               string    `bson:"_id,omitempty"`
	Title            string    `bson:"title"`
	FlightNumber     string    `bson:"flightNumber"`
	Departure        string    `bson:"departure"`
	Arrival          string    `bson:"arrival"`
	DepartureTime    string    `bson:"departureTime"`
	ArrivalTime      string    `bson:"arrivalTime"`
	DueDate          time.Time `bson:"dueDate"`
	ArrivalDayOffset int       `bson:"arrivalDayOffset"`
	Airline          Airline   `bson:"airline"`
	IsCompleted      bool      `bson:"isCompleted"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

// EffectiveArrivalDate is the calendar day the flight lands on. ArrivalTime is
// read against this date, not DueDate, for routes that cross midnight.
func (t FlightTask) EffectiveArrivalDate() time.Time {
	return t.DueDate.AddDate(0, 0, t.ArrivalDayOffset)
}

// NormalizedFlight is the transient output of normalizing one search result,
// ready for the ledger. It carries no identity; the ledger assigns one on add.
type NormalizedFlight struct {
	Title            string
	FlightNumber     string
	Departure        string
	Arrival          string
	DepartureTime    string
	ArrivalTime      string
	DueDate          time.Time
	ArrivalDayOffset int
	Airline          Airline
	RawAirlineCode   string
}
