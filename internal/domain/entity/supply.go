package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supply is one donation record. DonatedBy correlates to User.Email; a
// supply referencing an unknown donor is valid, it is simply excluded from
// the leaderboard join.
//
// Amount is the only field the aggregation reads. An explicit 0 is stored
// as 0; legacy documents written without an amount decode as 0. Either way
// the record contributes nothing to a donor's total.
type Supply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Quantity    string             `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Amount      float64            `bson:"amount" json:"amount"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	DonatedBy   string             `bson:"donatedBy,omitempty" json:"donatedBy,omitempty"`
	Posts       []SupplyPost       `bson:"post,omitempty" json:"post,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// SupplyPost is one status update appended to a supply. Posts are
// append-only; prior entries are never replaced.
type SupplyPost struct {
	Message   string    `bson:"message" json:"message"`
	PostedBy  string    `bson:"postedBy,omitempty" json:"postedBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// LeaderboardEntry is the public projection of one donor's contribution.
// Derived per request, never persisted. Designation has no write path in
// this API and stays empty unless set out-of-band.
type LeaderboardEntry struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Designation   string             `json:"designation,omitempty"`
	Image         string             `json:"image,omitempty"`
	TotalDonation float64            `json:"totalDonation"`
}
