// Package proposals persists collaboration proposals submitted by users.
package proposals

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error)
	List(ctx context.Context) ([]*models.Proposal, error)
	Delete(ctx context.Context, id string) error
}
