package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type WorkshopService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWorkshopService(db *sql.DB, m repomanager.RepositoryManager) *WorkshopService {
	return &WorkshopService{db: db, repomanager: m}
}

func (s *WorkshopService) List(ctx context.Context) ([]*models.Workshop, error) {
	return s.repomanager.Workshops(s.db).List(ctx)
}

func (s *WorkshopService) Get(ctx context.Context, id string) (*models.Workshop, error) {
	return s.repomanager.Workshops(s.db).GetByID(ctx, id)
}

func (s *WorkshopService) Create(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error) {
	if workshop.Name == "" || workshop.Day == "" || workshop.Schedule == "" {
		return nil, common.ErrorValidation
	}
	if workshop.Capacity < 0 {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Workshops(s.db).Create(ctx, workshop)
	if err != nil {
		return nil, fmt.Errorf("error creating workshop: %w", err)
	}
	return created, nil
}

func (s *WorkshopService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Workshops(s.db).Delete(ctx, id)
}
