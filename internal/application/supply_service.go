package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
	"github.com/disastercare/relief-hub/pkg/helpers"
	"github.com/disastercare/relief-hub/pkg/mailer"
)

// SupplyService covers supply CRUD, the leaderboard aggregation, receipt
// publishing, and search. Pub and ES are optional collaborators; when nil
// the corresponding side effects are skipped.
type SupplyService struct {
	Supplies repository.SupplyRepository
	Users    repository.UserRepository
	Pub      *helpers.RabbitPublisher
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewSupplyService(supplies repository.SupplyRepository, users repository.UserRepository, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *SupplyService {
	return &SupplyService{Supplies: supplies, Users: users, Pub: pub, ES: es, ESIndex: esIndex, Logger: logger}
}

// Create inserts the supply, queues a donation receipt for a known donor,
// and indexes the document for search. The insert is the operation; the
// side effects are fire-and-forget.
func (s *SupplyService) Create(ctx context.Context, supply *entity.Supply) (string, error) {
	id, err := s.Supplies.Create(ctx, supply)
	if err != nil {
		return "", err
	}

	if s.Pub != nil && supply.DonatedBy != "" && supply.Amount > 0 {
		if donor, derr := s.Users.GetByEmail(ctx, supply.DonatedBy); derr == nil {
			job := mailer.ReceiptJob{
				To:        donor.Email,
				DonorName: donor.Name,
				Title:     supply.Title,
				Amount:    supply.Amount,
				SupplyID:  id,
			}
			if perr := s.Pub.PublishJSON(ctx, job); perr != nil {
				s.Logger.WithError(perr).WithField("supply_id", id).Warn("receipt publish failed")
			}
		}
	}

	s.indexSupply(ctx, supply)
	return id, nil
}

func (s *SupplyService) List(ctx context.Context, limit int64) ([]entity.Supply, error) {
	return s.Supplies.List(ctx, limit)
}

func (s *SupplyService) Get(ctx context.Context, id string) (*entity.Supply, error) {
	return s.Supplies.GetByID(ctx, id)
}

// AppendPost appends one status update to the supply's post list.
func (s *SupplyService) AppendPost(ctx context.Context, id string, post entity.SupplyPost) (repository.UpdateResult, error) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	return s.Supplies.AppendPost(ctx, id, post)
}

func (s *SupplyService) Delete(ctx context.Context, id string) (int64, error) {
	return s.Supplies.Delete(ctx, id)
}

// Leaderboard scans donor users and all supplies at call time and folds
// them into the ranked projection. Nothing is cached; the result is
// discarded after the response.
func (s *SupplyService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	donors, err := s.Users.ListByRole(ctx, entity.RoleDonor)
	if err != nil {
		return nil, err
	}
	supplies, err := s.Supplies.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(donors, supplies), nil
}

func (s *SupplyService) indexSupply(ctx context.Context, supply *entity.Supply) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"title":       supply.Title,
		"category":    supply.Category,
		"description": supply.Description,
		"amount":      supply.Amount,
		"donatedBy":   supply.DonatedBy,
		"createdAt":   supply.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: supply.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("supply_id", supply.ID.Hex()).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("supply_id", supply.ID.Hex()).Warn("es index response error")
	}
}

// Search performs a multi_match query over title, category, and description.
func (s *SupplyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "category", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
