package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disastercare/relief-hub/internal/application"
	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
	handlers "github.com/disastercare/relief-hub/internal/interface/http"
	"github.com/disastercare/relief-hub/internal/router"
	"github.com/disastercare/relief-hub/internal/router/modules"
	"github.com/disastercare/relief-hub/pkg/helpers"
	"github.com/disastercare/relief-hub/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

// in-memory repositories mirroring the store contract

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	r.users[u.Email] = *u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role string) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateImage(_ context.Context, email, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Image = image
	r.users[email] = u
	return nil
}

type memSupplyRepo struct {
	mu       sync.Mutex
	supplies map[string]entity.Supply
}

func (r *memSupplyRepo) Create(_ context.Context, s *entity.Supply) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = primitive.NewObjectID()
	s.CreatedAt = time.Now().UTC()
	r.supplies[s.ID.Hex()] = *s
	return s.ID.Hex(), nil
}

func (r *memSupplyRepo) List(_ context.Context, limit int64) ([]entity.Supply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Supply, 0, len(r.supplies))
	for _, s := range r.supplies {
		out = append(out, s)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *memSupplyRepo) GetByID(_ context.Context, id string) (*entity.Supply, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.supplies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *memSupplyRepo) AppendPost(_ context.Context, id string, post entity.SupplyPost) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.supplies[id]; ok {
		s.Posts = append(s.Posts, post)
		r.supplies[id] = s
		return repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	r.supplies[id] = entity.Supply{ID: oid, Posts: []entity.SupplyPost{post}}
	return repository.UpdateResult{UpsertedID: id}, nil
}

func (r *memSupplyRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.supplies[id]; !ok {
		return 0, nil
	}
	delete(r.supplies, id)
	return 1, nil
}

type memVolunteerRepo struct {
	mu         sync.Mutex
	volunteers map[string]entity.Volunteer
}

func (r *memVolunteerRepo) Create(_ context.Context, v *entity.Volunteer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.volunteers[v.Email]; ok {
		return "", repository.ErrDuplicateEmail
	}
	v.ID = primitive.NewObjectID()
	r.volunteers[v.Email] = *v
	return v.ID.Hex(), nil
}

var (
	_ repository.UserRepository      = (*memUserRepo)(nil)
	_ repository.SupplyRepository    = (*memSupplyRepo)(nil)
	_ repository.VolunteerRepository = (*memVolunteerRepo)(nil)
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	users := &memUserRepo{users: make(map[string]entity.User)}
	supplies := &memSupplyRepo{supplies: make(map[string]entity.Supply)}
	volunteers := &memVolunteerRepo{volunteers: make(map[string]entity.Volunteer)}

	userSvc := application.NewUserService(users, jwt, nil, "", logger)
	supplySvc := application.NewSupplyService(supplies, users, nil, nil, "", logger)
	volunteerSvc := application.NewVolunteerService(volunteers, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewHealthModule())
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	reg.Add(modules.NewSupplyModule(handlers.NewSupplyHandler(supplySvc, logger)))
	reg.Add(modules.NewVolunteerModule(handlers.NewVolunteerHandler(volunteerSvc, logger)))
	reg.RegisterAll()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	w := doJSON(t, engine, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]any
	decode(t, w, &body)
	if body["message"] != "Server is running smoothly" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	engine := newTestEngine(t)

	payload := gin.H{"name": "Amina", "email": "amina@x.com", "password": "secret123", "role": "donor"}
	w := doJSON(t, engine, http.MethodPost, "/api/v1/register", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", w.Code, w.Body.String())
	}

	// same email again is rejected with one 400
	w = doJSON(t, engine, http.MethodPost, "/api/v1/register", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status %d", w.Code)
	}
	var dup map[string]any
	decode(t, w, &dup)
	if dup["message"] != "User already exists" {
		t.Fatalf("unexpected duplicate message: %v", dup["message"])
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/login", gin.H{"email": "amina@x.com", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decode(t, w, &login)
	if !login.Success || login.Token == "" {
		t.Fatalf("unexpected login body: %s", w.Body.String())
	}

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	claims, err := jwt.Parse(login.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Email != "amina@x.com" {
		t.Fatalf("token email %q", claims.Email)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/login", gin.H{"email": "amina@x.com", "password": "wrong-password"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status %d", w.Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	engine := newTestEngine(t)
	w := doJSON(t, engine, http.MethodPost, "/api/v1/register", gin.H{
		"name": "A", "email": "a@x.com", "password": "abc", "role": "donor",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestSupplyLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	// donor must exist for the leaderboard join
	w := doJSON(t, engine, http.MethodPost, "/api/v1/register", gin.H{
		"name": "Noor", "email": "noor@x.com", "password": "secret123", "role": "donor",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register donor: %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodPost, "/create-supply", gin.H{
		"title": "Blankets", "category": "warmth", "amount": 50, "donatedBy": "noor@x.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create supply status %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		InsertedID string `json:"insertedId"`
	}
	decode(t, w, &created)
	if created.InsertedID == "" {
		t.Fatal("missing insertedId")
	}

	w = doJSON(t, engine, http.MethodGet, "/supply/"+created.InsertedID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get supply status %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodPatch, "/supply/"+created.InsertedID, gin.H{
		"message": "arrived at warehouse", "postedBy": "vol@x.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status %d: %s", w.Code, w.Body.String())
	}
	var patched struct {
		MatchedCount int64 `json:"matchedCount"`
	}
	decode(t, w, &patched)
	if patched.MatchedCount != 1 {
		t.Fatalf("matchedCount %d", patched.MatchedCount)
	}

	w = doJSON(t, engine, http.MethodGet, "/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard status %d", w.Code)
	}
	var board []struct {
		Name          string  `json:"name"`
		TotalDonation float64 `json:"totalDonation"`
	}
	decode(t, w, &board)
	if len(board) != 1 || board[0].Name != "Noor" || board[0].TotalDonation != 50 {
		t.Fatalf("unexpected leaderboard: %s", w.Body.String())
	}

	w = doJSON(t, engine, http.MethodDelete, "/delete-supply/"+created.InsertedID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status %d", w.Code)
	}
	var deleted struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	decode(t, w, &deleted)
	if deleted.DeletedCount != 1 {
		t.Fatalf("deletedCount %d", deleted.DeletedCount)
	}

	// gone now, second delete reports zero
	w = doJSON(t, engine, http.MethodDelete, "/delete-supply/"+created.InsertedID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second delete status %d", w.Code)
	}
	decode(t, w, &deleted)
	if deleted.DeletedCount != 0 {
		t.Fatalf("second deletedCount %d", deleted.DeletedCount)
	}
}

func TestSupplyErrorMapping(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/supply/not-an-object-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id status %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/supply/652a1b2c3d4e5f6a7b8c9d0e", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing supply status %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/supplies?limit=-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative limit status %d", w.Code)
	}
}

func TestVolunteerDuplicateRespondsOnce(t *testing.T) {
	engine := newTestEngine(t)

	payload := gin.H{"name": "Vera", "email": "vera@x.com", "phone": "123", "location": "North"}
	w := doJSON(t, engine, http.MethodPost, "/create-volunteer", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create volunteer status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, engine, http.MethodPost, "/create-volunteer", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate volunteer status %d", w.Code)
	}
	var body map[string]any
	decode(t, w, &body)
	if body["message"] != "Volunteer already exists" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestUsersLookup(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/register", gin.H{
		"name": "Amina", "email": "amina@x.com", "password": "secret123", "role": "donor",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list users status %d", w.Code)
	}
	var users []entity.User
	decode(t, w, &users)
	if len(users) != 1 || users[0].Email != "amina@x.com" {
		t.Fatalf("unexpected users: %s", w.Body.String())
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/users/amina@x.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get user status %d", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/users/ghost@x.com", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing user status %d", w.Code)
	}
}

type failingUserRepo struct {
	*memUserRepo
	getErr error
}

func (r *failingUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.memUserRepo.GetByEmail(ctx, email)
}

func TestLoginStoreFailureIsServerError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	users := &failingUserRepo{
		memUserRepo: &memUserRepo{users: make(map[string]entity.User)},
		getErr:      errors.New("server selection timeout"),
	}
	userSvc := application.NewUserService(users, jwt, nil, "", logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	reg.RegisterAll()

	w := doJSON(t, engine, http.MethodPost, "/api/v1/login", gin.H{"email": "a@x.com", "password": "secret123"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("store failure status %d, want 500: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	decode(t, w, &body)
	if body["success"] != false {
		t.Fatalf("expected structured error body: %s", w.Body.String())
	}
}

func TestAvatarRequiresBearer(t *testing.T) {
	engine := newTestEngine(t)
	w := doJSON(t, engine, http.MethodPost, "/api/v1/users/avatar", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", w.Code)
	}
}
