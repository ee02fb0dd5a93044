package repository

import (
	"context"

	"aerolog-service/internal/domain/entity"
)

// AirportRepository resolves an airport code (IATA or ICAO) to its reference
// record. Lookups are case-insensitive.
type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
}
