// Package partners persists partner organizations.
package partners

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	ListPage(ctx context.Context, limit, page int) ([]*models.Partner, int, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	Create(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	Delete(ctx context.Context, id string) error
}
