package models

// ServiceType is a catalog entry: read-only reference data used to populate
// the request creation selector.
type ServiceType struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}
