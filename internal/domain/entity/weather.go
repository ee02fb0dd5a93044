package entity

// WeatherReport is the normalized current-conditions view shown for an
// arrival airport. Failures to produce one are soft; flight display never
// depends on it.
type WeatherReport struct {
	Location LocationInfo
	Current  CurrentWeather
}

type LocationInfo struct {
	Name      string
	Country   string
	LocalTime string
}

type CurrentWeather struct {
	TemperatureC float64
	Descriptions []string
	Icons        []string
	WindKph      int
	Humidity     int
	VisibilityKm int
}
