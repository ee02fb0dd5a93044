package entity

import "strings"

// Airline is one of the fixed set of supported carriers
type Airline string

const (
	AirlineQantas        Airline = "Qantas"
	AirlineVirgin        Airline = "Virgin Australia"
	AirlineJetstar       Airline = "Jetstar"
	AirlineAirChina      Airline = "Air China"
	AirlineChinaAirlines Airline = "China Airlines"
	AirlineEmirates      Airline = "Emirates"
	AirlineAmerican      Airline = "American Airlines"
	AirlineCathayPacific Airline = "Cathay Pacific"
)

// DefaultAirline is used when a result's carrier code matches nothing we know.
// The log must always display something, so unmatched codes do not fail the add.
const DefaultAirline = AirlineQantas

var airlineCodes = map[Airline]string{
	AirlineQantas:        "QF",
	AirlineVirgin:        "VA",
	AirlineJetstar:       "JQ",
	AirlineAirChina:      "CA",
	AirlineChinaAirlines: "CI",
	AirlineEmirates:      "EK",
	AirlineAmerican:      "AA",
	AirlineCathayPacific: "CX",
}

// Code returns the airline's 2-letter IATA code
func (a Airline) Code() string {
	return airlineCodes[a]
}

// IsValid reports whether a is one of the supported carriers
func (a Airline) IsValid() bool {
	_, ok := airlineCodes[a]
	return ok
}

// Airlines lists every supported carrier
func Airlines() []Airline {
	return []Airline{
		AirlineQantas,
		AirlineVirgin,
		AirlineJetstar,
		AirlineAirChina,
		AirlineChinaAirlines,
		AirlineEmirates,
		AirlineAmerican,
		AirlineCathayPacific,
	}
}

// MatchAirline resolves a carrier IATA code to a supported airline,
// case-insensitively. Unmatched codes fall back to DefaultAirline.
func MatchAirline(iataCode string) Airline {
	code := strings.ToUpper(strings.TrimSpace(iataCode))
	for _, a := range Airlines() {
		if a.Code() == code {
			return a
		}
	}
	return DefaultAirline
}
