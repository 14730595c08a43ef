package requestRepo

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

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	coll := database.Collection("service_requests")
	repo := &MongoRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service request document.
func (r *MongoRequestRepo) Create(req *models.ServiceRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	req.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}

// GetByID retrieves a request document by its ID.
func (r *MongoRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.ServiceRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &req, nil
}

// UpdateStatus moves a request from one status to another.
func (r *MongoRequestRepo) UpdateStatus(id string, from, to models.RequestStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status for request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request %s not found in status %s", id, from)
	}
	return nil
}
