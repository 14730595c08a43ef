package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.Collection("service_providers")
	repo := &MongoProviderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces one profile per user at the storage layer.
func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a profile document by its ID.
func (r *MongoProviderRepo) GetByID(id string) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.ProviderProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by the given user. The "no rows"
// outcome maps to ErrNotFound so the service layer can tell first-run setup
// apart from a failed read.
func (r *MongoProviderRepo) GetByUserID(userID string) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.ProviderProfile
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Create inserts a new provider profile document.
func (r *MongoProviderRepo) Create(profile *models.ProviderProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create provider profile: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update and returns the stored row.
func (r *MongoProviderRepo) UpdateFields(id string, upd models.ProviderProfileUpdate) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if upd.HourlyRate != nil {
		set["hourly_rate"] = *upd.HourlyRate
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Available != nil {
		set["is_available"] = *upd.Available
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.ProviderProfile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update provider profile %s: %w", id, err)
	}
	return &profile, nil
}

// ListAvailable retrieves all available profiles joined with the owning
// account.
func (r *MongoProviderRepo) ListAvailable() ([]models.JoinedProvider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_available": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "user_profiles",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("provider aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var joined []models.JoinedProvider
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, fmt.Errorf("failed to decode joined providers: %w", err)
	}
	return joined, nil
}
