// Package events persists foundation events.
package events

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}
