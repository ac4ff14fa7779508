package application

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
)

// In-memory repositories backing the service tests. They honor the same
// contracts as the mongodb implementations: unique emails, ObjectID hex
// identifiers, upsert-on-append.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role string) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.User, 0)
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateImage(_ context.Context, email, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Image = imageURL
	f.users[email] = u
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeSupplyRepo struct {
	mu       sync.Mutex
	supplies map[string]entity.Supply // keyed by ObjectID hex
}

func newFakeSupplyRepo() *fakeSupplyRepo {
	return &fakeSupplyRepo{supplies: make(map[string]entity.Supply)}
}

func (f *fakeSupplyRepo) Create(_ context.Context, s *entity.Supply) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = primitive.NewObjectID()
	f.supplies[s.ID.Hex()] = *s
	return s.ID.Hex(), nil
}

func (f *fakeSupplyRepo) List(_ context.Context, limit int64) ([]entity.Supply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Supply, 0, len(f.supplies))
	for _, s := range f.supplies {
		out = append(out, s)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSupplyRepo) GetByID(_ context.Context, id string) (*entity.Supply, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.supplies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSupplyRepo) AppendPost(_ context.Context, id string, post entity.SupplyPost) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, repository.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.supplies[id]; ok {
		s.Posts = append(s.Posts, post)
		f.supplies[id] = s
		return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	f.supplies[id] = entity.Supply{ID: oid, Posts: []entity.SupplyPost{post}}
	return repository.UpdateResult{UpsertedID: id}, nil
}

func (f *fakeSupplyRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.supplies[id]; !ok {
		return 0, nil
	}
	delete(f.supplies, id)
	return 1, nil
}

var _ repository.SupplyRepository = (*fakeSupplyRepo)(nil)

type fakeVolunteerRepo struct {
	mu         sync.Mutex
	volunteers map[string]entity.Volunteer
}

func newFakeVolunteerRepo() *fakeVolunteerRepo {
	return &fakeVolunteerRepo{volunteers: make(map[string]entity.Volunteer)}
}

func (f *fakeVolunteerRepo) Create(_ context.Context, v *entity.Volunteer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.volunteers[v.Email]; ok {
		return "", repository.ErrDuplicateEmail
	}
	v.ID = primitive.NewObjectID()
	f.volunteers[v.Email] = *v
	return v.ID.Hex(), nil
}

var _ repository.VolunteerRepository = (*fakeVolunteerRepo)(nil)
