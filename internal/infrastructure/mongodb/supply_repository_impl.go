package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
)

type SupplyRepository struct {
	coll *mongo.Collection
}

func NewSupplyRepository(db *mongo.Database) *SupplyRepository {
	return &SupplyRepository{coll: db.Collection(SuppliesCollection)}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}

func (r *SupplyRepository) Create(ctx context.Context, s *entity.Supply) (string, error) {
	s.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	s.ID = oid
	return oid.Hex(), nil
}

func (r *SupplyRepository) List(ctx context.Context, limit int64) ([]entity.Supply, error) {
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}
	cur, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	supplies := make([]entity.Supply, 0)
	if err := cur.All(ctx, &supplies); err != nil {
		return nil, err
	}
	return supplies, nil
}

func (r *SupplyRepository) GetByID(ctx context.Context, id string) (*entity.Supply, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s := &entity.Supply{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// AppendPost pushes one post onto the supply's post array, creating the
// document if it does not exist. Prior posts are never touched.
func (r *SupplyRepository) AppendPost(ctx context.Context, id string, post entity.SupplyPost) (repository.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"post": post}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	out := repository.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = upserted.Hex()
	}
	return out, nil
}

func (r *SupplyRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ repository.SupplyRepository = (*SupplyRepository)(nil)
