// Package news persists published articles.
package news

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.News, error)
	GetByID(ctx context.Context, id string) (*models.News, error)
	Create(ctx context.Context, item *models.News) (*models.News, error)
	Delete(ctx context.Context, id string) error
}
