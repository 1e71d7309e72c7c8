package postgres

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDGenerator mints 24-character hex identifiers. The POS platform
// keys its records by Mongo-style ObjectIDs, and generating the same format
// here keeps every identifier valid under domain.IsValidObjectID.
type ObjectIDGenerator struct{}

// NewObjectIDGenerator creates a new ObjectIDGenerator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

// Generate generates a new ObjectID hex string.
func (g *ObjectIDGenerator) Generate() string {
	return primitive.NewObjectID().Hex()
}
