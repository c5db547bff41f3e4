// Package workshops persists training workshops.
package workshops

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Workshop, error)
	GetByID(ctx context.Context, id string) (*models.Workshop, error)
	Create(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error)
	Delete(ctx context.Context, id string) error
}
