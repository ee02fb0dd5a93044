package entity

// Coordinate is a geographic point in decimal degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Airport is one row of the airport reference dataset
type Airport struct {
	IATA       string
	ICAO       string
	Name       string
	Coordinate Coordinate
}
