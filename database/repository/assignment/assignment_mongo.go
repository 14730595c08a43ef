package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"localserve/database"
	"localserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssignmentRepository defines data access for assignments.
type AssignmentRepository interface {
	// Create inserts a new assignment record.
	Create(assignment *models.Assignment) error
	// ListByProvider retrieves a provider's assignments joined transitively
	// to their requests, newest by assignment date first.
	ListByProvider(providerID string) ([]models.JoinedAssignment, error)
}

// MongoAssignmentRepo implements AssignmentRepository using MongoDB.
type MongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo creates a new instance of AssignmentRepository using MongoDB.
func NewMongoAssignmentRepo() AssignmentRepository {
	coll := database.Collection("assignments")
	repo := &MongoAssignmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAssignmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "assigned_at", Value: -1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new assignment document.
func (r *MongoAssignmentRepo) Create(assignment *models.Assignment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, assignment); err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// ListByProvider retrieves a provider's assignments, each joined to its
// request and through it to the service catalog entry and the requesting
// customer.
func (r *MongoAssignmentRepo) ListByProvider(providerID string) ([]models.JoinedAssignment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"provider_id": providerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "assigned_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "service_requests",
			"localField":   "request_id",
			"foreignField": "id",
			"as":           "request",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$request",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "request.service_id",
			"foreignField": "id",
			"as":           "request.service",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$request.service",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "user_profiles",
			"localField":   "request.customer_id",
			"foreignField": "id",
			"as":           "request.customer",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$request.customer",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("assignment aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var joined []models.JoinedAssignment
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, fmt.Errorf("failed to decode joined assignments: %w", err)
	}
	return joined, nil
}
