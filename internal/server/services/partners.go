package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type PartnerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPartnerService(db *sql.DB, m repomanager.RepositoryManager) *PartnerService {
	return &PartnerService{db: db, repomanager: m}
}

// List returns one page of partners. An empty page reports ErrorNotFound,
// matching the platform's historical behavior.
func (s *PartnerService) List(ctx context.Context, limit, page int) (*Page[*models.Partner], error) {
	if limit < 1 {
		limit = 5
	}
	if page < 1 {
		page = 1
	}
	data, total, err := s.repomanager.Partners(s.db).ListPage(ctx, limit, page)
	if err != nil {
		return nil, fmt.Errorf("error listing partners: %w", err)
	}
	if len(data) == 0 {
		return nil, common.ErrorNotFound
	}
	return &Page[*models.Partner]{Data: data, Total: total}, nil
}

func (s *PartnerService) Get(ctx context.Context, id string) (*models.Partner, error) {
	return s.repomanager.Partners(s.db).GetByID(ctx, id)
}

func (s *PartnerService) Create(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if partner.Name == "" || partner.Email == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Partners(s.db).Create(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("error creating partner: %w", err)
	}
	return created, nil
}

func (s *PartnerService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Partners(s.db).Delete(ctx, id)
}
