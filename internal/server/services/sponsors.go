package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

// Page is the envelope returned by paginated listings.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type SponsorService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSponsorService(db *sql.DB, m repomanager.RepositoryManager) *SponsorService {
	return &SponsorService{db: db, repomanager: m}
}

func (s *SponsorService) List(ctx context.Context, limit, page int) (*Page[*models.Sponsor], error) {
	if limit < 1 {
		limit = 5
	}
	if page < 1 {
		page = 1
	}
	data, total, err := s.repomanager.Sponsors(s.db).ListPage(ctx, limit, page)
	if err != nil {
		return nil, fmt.Errorf("error listing sponsors: %w", err)
	}
	return &Page[*models.Sponsor]{Data: data, Total: total}, nil
}

func (s *SponsorService) Get(ctx context.Context, id string) (*models.Sponsor, error) {
	return s.repomanager.Sponsors(s.db).GetByID(ctx, id)
}

func (s *SponsorService) Create(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error) {
	if sponsor.Name == "" || sponsor.Logo == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Sponsors(s.db).Create(ctx, sponsor)
	if err != nil {
		return nil, fmt.Errorf("error creating sponsor: %w", err)
	}
	return created, nil
}

func (s *SponsorService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Sponsors(s.db).Delete(ctx, id)
}
