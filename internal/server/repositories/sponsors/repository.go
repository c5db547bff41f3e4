// Package sponsors persists sponsor records with offset pagination.
package sponsors

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	// ListPage returns one page of sponsors plus the total row count.
	ListPage(ctx context.Context, limit, page int) ([]*models.Sponsor, int, error)
	GetByID(ctx context.Context, id string) (*models.Sponsor, error)
	Create(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error)
	Delete(ctx context.Context, id string) error
}
