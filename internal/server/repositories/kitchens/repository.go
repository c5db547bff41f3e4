// Package kitchens persists community kitchen locations.
package kitchens

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.CommunityKitchen, error)
	GetByID(ctx context.Context, id string) (*models.CommunityKitchen, error)
	Create(ctx context.Context, kitchen *models.CommunityKitchen) (*models.CommunityKitchen, error)
	Delete(ctx context.Context, id string) error
}
