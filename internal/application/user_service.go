package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
	"github.com/disastercare/relief-hub/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService covers registration, login, user listing, and avatar uploads.
type UserService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register hashes the password and inserts the user. The unique email index
// rejects duplicates; there is no check-then-insert window.
func (s *UserService) Register(ctx context.Context, in RegisterInput) error {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}
	s.Logger.WithFields(logrus.Fields{"email": in.Email, "role": in.Role}).Info("user registered")
	return nil
}

// Login verifies the credential and issues a signed token. Unknown email and
// bad password are indistinguishable to the caller; store failures are not
// credential failures and propagate as-is.
func (s *UserService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("token generation failed")
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and records its public URL on the
// user's image field.
func (s *UserService) UploadAvatar(ctx context.Context, email string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", email, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateImage(ctx, email, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return url, nil
}
