package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles observed in user documents. Only RoleDonor participates in the
// leaderboard aggregation.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User is an identity record. Email is the business key and is unique,
// enforced by an index on the users collection. Password holds the bcrypt
// hash, never the plaintext.
//
// The list and point-lookup endpoints serialize the whole document,
// hash included, matching the public contract of this API.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"password"`
	Role        string             `bson:"role" json:"role"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
