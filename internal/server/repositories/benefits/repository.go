// Package benefits persists member benefits.
package benefits

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Benefit, error)
	GetByID(ctx context.Context, id string) (*models.Benefit, error)
	Create(ctx context.Context, benefit *models.Benefit) (*models.Benefit, error)
	Delete(ctx context.Context, id string) error
}
