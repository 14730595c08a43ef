package requestRepo

import (
	"fmt"
	"time"

	"localserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// serviceLookup joins the service catalog entry into the "service" field.
func serviceLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "service_id",
			"foreignField": "id",
			"as":           "service",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$service",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// customerLookup joins the requesting customer into the "customer" field.
func customerLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "user_profiles",
			"localField":   "customer_id",
			"foreignField": "id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$customer",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *MongoRequestRepo) aggregateJoined(pipeline mongo.Pipeline) ([]models.JoinedRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("request aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var joined []models.JoinedRequest
	if err := cursor.All(ctx, &joined); err != nil {
		return nil, fmt.Errorf("failed to decode joined requests: %w", err)
	}
	return joined, nil
}

// ListByCustomer retrieves a customer's requests joined with the service
// catalog, newest first.
func (r *MongoRequestRepo) ListByCustomer(customerID string) ([]models.JoinedRequest, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = append(pipeline, serviceLookup()...)
	return r.aggregateJoined(pipeline)
}

// ListPending retrieves all pending requests joined with the service catalog
// and the requesting customer, newest first.
func (r *MongoRequestRepo) ListPending() ([]models.JoinedRequest, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.StatusPending}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = append(pipeline, serviceLookup()...)
	pipeline = append(pipeline, customerLookup()...)
	return r.aggregateJoined(pipeline)
}
