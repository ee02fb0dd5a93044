package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/domain/repository"
	"aerolog-service/pkg/logger"
	"aerolog-service/pkg/metrics"
	"aerolog-service/pkg/utils"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput is returned when a required field is missing on add
	ErrInvalidInput = errors.New("all required fields must be filled in")

	// ErrDuplicateFlight is returned when the same flight number already
	// exists for the same calendar day. The same flight on a different day is
	// allowed; weekly recurring flights are a normal case.
	ErrDuplicateFlight = errors.New("this flight has already been added to your log")
)

// TaskLedger is the authoritative collection of a user's flights. It mirrors
// the persisted store in memory and serializes every mutation behind one
// mutex, so the duplicate check and the insert are atomic as an observable
// unit. A failed persist never touches the in-memory list.
type TaskLedger struct {
	repo    repository.TaskRepository
	metrics *metrics.Metrics
	logger  logger.Logger

	mu    sync.Mutex
	tasks []*entity.FlightTask
}

// NewTaskLedger creates a ledger and loads the persisted tasks
func NewTaskLedger(ctx context.Context, repo repository.TaskRepository, m *metrics.Metrics, log logger.Logger) (*TaskLedger, error) {
	tasks, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight tasks: %w", err)
	}

	return &TaskLedger{
		repo:    repo,
		metrics: m,
		logger:  log,
		tasks:   tasks,
	}, nil
}

// Add validates the candidate, enforces the one-flight-per-day rule, persists
// and returns the new task. The returned task carries its freshly assigned id.
func (l *TaskLedger) Add(ctx context.Context, candidate entity.NormalizedFlight) (*entity.FlightTask, error) {
	if strings.TrimSpace(candidate.Title) == "" || strings.TrimSpace(candidate.FlightNumber) == "" {
		return nil, ErrInvalidInput
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	dueDay := utils.TruncateToDay(candidate.DueDate)

	existing, err := l.repo.FindByFlightAndDate(ctx, candidate.FlightNumber, dueDay)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		l.metrics.DuplicatesRejected.Inc()
		return nil, ErrDuplicateFlight
	}

	offset := candidate.ArrivalDayOffset
	if offset < 0 {
		offset = 0
	}

	task := &entity.FlightTask{
		ID:               uuid.NewString(),
		Title:            candidate.Title,
		FlightNumber:     candidate.FlightNumber,
		Departure:        candidate.Departure,
		Arrival:          candidate.Arrival,
		DepartureTime:    candidate.DepartureTime,
		ArrivalTime:      candidate.ArrivalTime,
		DueDate:          dueDay,
		ArrivalDayOffset: offset,
		Airline:          candidate.Airline,
		IsCompleted:      false,
	}

	if err := l.repo.Insert(ctx, task); err != nil {
		// The unique index is the backstop for writers outside this process
		if errors.Is(err, repository.ErrDuplicate) {
			l.metrics.DuplicatesRejected.Inc()
			return nil, ErrDuplicateFlight
		}
		return nil, fmt.Errorf("failed to persist flight task: %w", err)
	}

	l.tasks = append(l.tasks, task)
	l.metrics.TasksAdded.Inc()
	l.logger.Info("Flight task added",
		"id", task.ID,
		"flight", task.FlightNumber,
		"dueDate", task.DueDate.Format("2006-01-02"))

	return task, nil
}

// Remove deletes a task by id. Removing an absent id is a no-op, not an error.
func (l *TaskLedger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete flight task: %w", err)
	}

	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// ToggleCompletion flips a task's completion flag. An absent id is a no-op.
func (l *TaskLedger) ToggleCompletion(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var task *entity.FlightTask
	for _, t := range l.tasks {
		if t.ID == id {
			task = t
			break
		}
	}
	if task == nil {
		return nil
	}

	completed := !task.IsCompleted
	if err := l.repo.SetCompleted(ctx, id, completed); err != nil {
		return fmt.Errorf("failed to persist completion state: %w", err)
	}

	task.IsCompleted = completed
	return nil
}

// List returns all tasks in storage order. Grouping by due date is a display
// concern layered on top; callers sort on DueDate themselves.
func (l *TaskLedger) List(ctx context.Context) []*entity.FlightTask {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*entity.FlightTask, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// ListUpcoming returns tasks due on or after the given day, soonest first.
// This feeds the at-a-glance surface.
func (l *TaskLedger) ListUpcoming(ctx context.Context, from time.Time) ([]*entity.FlightTask, error) {
	return l.repo.ListUpcoming(ctx, from)
}
