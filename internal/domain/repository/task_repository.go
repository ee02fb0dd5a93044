package repository

import (
	"context"
	"errors"
	"time"

	"aerolog-service/internal/domain/entity"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicate is returned by Insert when the store's uniqueness constraint on
// (flight number, calendar day) rejects the write
var ErrDuplicate = errors.New("repository: duplicate flight for day")

// TaskRepository is the durable store for a user's flight tasks, keyed by task
// id and queryable by flight number + calendar day for the uniqueness check.
type TaskRepository interface {
	Insert(ctx context.Context, task *entity.FlightTask) error
	Delete(ctx context.Context, id string) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	FindByID(ctx context.Context, id string) (*entity.FlightTask, error)
	FindByFlightAndDate(ctx context.Context, flightNumber string, day time.Time) (*entity.FlightTask, error)
	List(ctx context.Context) ([]*entity.FlightTask, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*entity.FlightTask, error)
}
