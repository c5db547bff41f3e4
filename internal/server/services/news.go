package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type NewsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNewsService(db *sql.DB, m repomanager.RepositoryManager) *NewsService {
	return &NewsService{db: db, repomanager: m}
}

func (s *NewsService) List(ctx context.Context) ([]*models.News, error) {
	result, err := s.repomanager.News(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing news: %w", err)
	}
	return result, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	return s.repomanager.News(s.db).GetByID(ctx, id)
}

// Create stores a new article. At least the primary image is required.
func (s *NewsService) Create(ctx context.Context, item *models.News) (*models.News, error) {
	if item.Title == "" || item.Description == "" || item.PrimaryImage == "" {
		return nil, common.ErrorValidation
	}
	if item.Date.IsZero() {
		item.Date = time.Now()
	}
	created, err := s.repomanager.News(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating news: %w", err)
	}
	return created, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.repomanager.News(s.db).Delete(ctx, id)
}
