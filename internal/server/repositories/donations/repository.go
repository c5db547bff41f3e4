// Package donations persists donation records.
package donations

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, donation *models.Donation) (*models.Donation, error)
	List(ctx context.Context) ([]*models.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Donation, error)
}
