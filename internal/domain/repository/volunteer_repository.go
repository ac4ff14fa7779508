package repository

import (
	"context"

	"github.com/disastercare/relief-hub/internal/domain/entity"
)

// VolunteerRepository defines the interface for volunteer sign-ups.
type VolunteerRepository interface {
	Create(ctx context.Context, v *entity.Volunteer) (string, error)
}
