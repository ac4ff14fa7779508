package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
)

// VolunteerService records volunteer sign-ups.
type VolunteerService struct {
	Repo   repository.VolunteerRepository
	Logger *logrus.Logger
}

func NewVolunteerService(repo repository.VolunteerRepository, logger *logrus.Logger) *VolunteerService {
	return &VolunteerService{Repo: repo, Logger: logger}
}

// Create inserts the volunteer; a duplicate email surfaces as ErrEmailTaken.
func (s *VolunteerService) Create(ctx context.Context, v *entity.Volunteer) (string, error) {
	id, err := s.Repo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	s.Logger.WithField("email", v.Email).Info("volunteer registered")
	return id, nil
}
