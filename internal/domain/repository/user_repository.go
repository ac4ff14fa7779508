package repository

import (
	"context"
	"errors"

	"github.com/disastercare/relief-hub/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a point lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert violates a unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
	UpdateImage(ctx context.Context, email, imageURL string) error
}
