package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface against the
// relational airport reference table, for deployments that keep the dataset in
// Postgres instead of the bundled file.
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airportlist GORM model for database mapping
type Airportlist struct {
	ID        uint           `gorm:"primaryKey"`
	IataCode  string         `gorm:"column:iatacode;unique"`
	IcaoCode  string         `gorm:"column:icaocode"`
	Name      string         `gorm:"column:name"`
	Latitude  float64        `gorm:"column:latitude"`
	Longitude float64        `gorm:"column:longitude"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airportlist) TableName() string {
	return "m_airport_list"
}

// GetByCode finds an airport by IATA or ICAO code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	folded := strings.ToUpper(code)

	var airport Airportlist
	result := r.db.WithContext(ctx).
		Where("iatacode = ? OR icaocode = ?", folded, folded).
		First(&airport)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.Airport{
		IATA: airport.IataCode,
		ICAO: airport.IcaoCode,
		Name: airport.Name,
		Coordinate: entity.Coordinate{
			Latitude:  airport.Latitude,
			Longitude: airport.Longitude,
		},
	}, nil
}
