package repository

import (
	"context"
	"strings"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/domain/repository"
	"aerolog-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskRepository implements TaskRepository
type MongoTaskRepository struct {
	collection *mongo.Collection
}

// NewMongoTaskRepository creates a new flight task repository. The store
// carries a unique compound index on (flightNumberFold, dueDate) as the
// durable backstop for the one-flight-per-day rule.
func NewMongoTaskRepository(db *mongo.Database) repository.TaskRepository {
	collection := db.Collection("flight_tasks")

	ctx := context.Background()
	uniqueIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "flightNumberFold", Value: 1},
			{Key: "dueDate", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, uniqueIndex)

	// Upcoming-flights queries filter and sort on dueDate
	dueDateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "dueDate", Value: 1}},
	}
	collection.Indexes().CreateOne(ctx, dueDateIndex)

	return &MongoTaskRepository{
		collection: collection,
	}
}

// Insert stores a new flight task
func (r *MongoTaskRepository) Insert(ctx context.Context, task *entity.FlightTask) error {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	doc := bson.M{
		"_id":              task.ID,
		"title":            task.Title,
		"flightNumber":     task.FlightNumber,
		"flightNumberFold": strings.ToUpper(task.FlightNumber),
		"departure":        task.Departure,
		"arrival":          task.Arrival,
		"departureTime":    task.DepartureTime,
		"arrivalTime":      task.ArrivalTime,
		"dueDate":          utils.TruncateToDay(task.DueDate),
		"arrivalDayOffset": task.ArrivalDayOffset,
		"airline":          task.Airline,
		"isCompleted":      task.IsCompleted,
		"createdAt":        task.CreatedAt,
		"updatedAt":        task.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

// Delete removes a task by id; deleting an absent id is not an error
func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SetCompleted updates a task's completion flag
func (r *MongoTaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"isCompleted": completed,
			"updatedAt":   time.Now(),
		}},
	)
	return err
}

// FindByID finds a task by id
func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*entity.FlightTask, error) {
	var task entity.FlightTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByFlightAndDate finds a task by flight number (case-insensitive) and
// calendar day. This backs the ledger's duplicate check.
func (r *MongoTaskRepository) FindByFlightAndDate(ctx context.Context, flightNumber string, day time.Time) (*entity.FlightTask, error) {
	filter := bson.M{
		"flightNumberFold": strings.ToUpper(flightNumber),
		"dueDate":          utils.TruncateToDay(day),
	}

	var task entity.FlightTask
	err := r.collection.FindOne(ctx, filter).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns all tasks in storage order
func (r *MongoTaskRepository) List(ctx context.Context) ([]*entity.FlightTask, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*entity.FlightTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListUpcoming returns tasks due on or after the given day, soonest first
func (r *MongoTaskRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*entity.FlightTask, error) {
	filter := bson.M{"dueDate": bson.M{"$gte": utils.TruncateToDay(from)}}
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*entity.FlightTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
