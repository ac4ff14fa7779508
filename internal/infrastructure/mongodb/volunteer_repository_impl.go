package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
)

type VolunteerRepository struct {
	coll *mongo.Collection
}

func NewVolunteerRepository(db *mongo.Database) *VolunteerRepository {
	return &VolunteerRepository{coll: db.Collection(VolunteerCollection)}
}

func (r *VolunteerRepository) Create(ctx context.Context, v *entity.Volunteer) (string, error) {
	v.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, v)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateEmail
		}
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	v.ID = oid
	return oid.Hex(), nil
}

var _ repository.VolunteerRepository = (*VolunteerRepository)(nil)
