package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Volunteer is a relief volunteer sign-up. Email is unique across the
// volunteer collection.
type Volunteer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
