package repository

import (
	"context"

	"github.com/disastercare/relief-hub/internal/domain/entity"
)

// UpdateResult reports the outcome of a partial update, mirroring the
// document store's update acknowledgement.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// SupplyRepository defines the interface for supply donation records.
// List with limit <= 0 returns the whole collection.
type SupplyRepository interface {
	Create(ctx context.Context, s *entity.Supply) (string, error)
	List(ctx context.Context, limit int64) ([]entity.Supply, error)
	GetByID(ctx context.Context, id string) (*entity.Supply, error)
	AppendPost(ctx context.Context, id string, post entity.SupplyPost) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
