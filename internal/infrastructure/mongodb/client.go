package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the disasterCareHub database.
const (
	UsersCollection     = "users"
	SuppliesCollection  = "supplies"
	VolunteerCollection = "volunteer"
)

// Connect builds a client, verifies the connection with a ping, and returns it.
func Connect(ctx context.Context, uri string, connTimeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri).SetConnectTimeout(connTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique email indexes the write paths rely on.
// Duplicate registration is rejected by the store itself instead of a
// check-then-insert sequence.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return err
	}
	if _, err := db.Collection(VolunteerCollection).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return err
	}
	donatedBy := mongo.IndexModel{
		Keys: bson.D{{Key: "donatedBy", Value: 1}},
	}
	_, err := db.Collection(SuppliesCollection).Indexes().CreateOne(ctx, donatedBy)
	return err
}
