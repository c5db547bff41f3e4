package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type BenefitService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBenefitService(db *sql.DB, m repomanager.RepositoryManager) *BenefitService {
	return &BenefitService{db: db, repomanager: m}
}

func (s *BenefitService) List(ctx context.Context) ([]*models.Benefit, error) {
	return s.repomanager.Benefits(s.db).List(ctx)
}

func (s *BenefitService) Get(ctx context.Context, id string) (*models.Benefit, error) {
	return s.repomanager.Benefits(s.db).GetByID(ctx, id)
}

func (s *BenefitService) Create(ctx context.Context, benefit *models.Benefit) (*models.Benefit, error) {
	if benefit.Title == "" || benefit.Description == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Benefits(s.db).Create(ctx, benefit)
	if err != nil {
		return nil, fmt.Errorf("error creating benefit: %w", err)
	}
	return created, nil
}

func (s *BenefitService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Benefits(s.db).Delete(ctx, id)
}

type CommunityKitchenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommunityKitchenService(db *sql.DB, m repomanager.RepositoryManager) *CommunityKitchenService {
	return &CommunityKitchenService{db: db, repomanager: m}
}

func (s *CommunityKitchenService) List(ctx context.Context) ([]*models.CommunityKitchen, error) {
	return s.repomanager.Kitchens(s.db).List(ctx)
}

func (s *CommunityKitchenService) Get(ctx context.Context, id string) (*models.CommunityKitchen, error) {
	return s.repomanager.Kitchens(s.db).GetByID(ctx, id)
}

func (s *CommunityKitchenService) Create(ctx context.Context, kitchen *models.CommunityKitchen) (*models.CommunityKitchen, error) {
	if kitchen.Name == "" || kitchen.Address == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Kitchens(s.db).Create(ctx, kitchen)
	if err != nil {
		return nil, fmt.Errorf("error creating community kitchen: %w", err)
	}
	return created, nil
}

func (s *CommunityKitchenService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Kitchens(s.db).Delete(ctx, id)
}
