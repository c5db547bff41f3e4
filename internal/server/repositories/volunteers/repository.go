// Package volunteers persists volunteer profiles and their event
// assignments.
package volunteers

import (
	"context"

	"github.com/fundacionraices/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error)
	GetByUserID(ctx context.Context, userID string) (*models.Volunteer, error)
	List(ctx context.Context) ([]*models.Volunteer, error)
	AssignEvent(ctx context.Context, volunteerID, eventID string) error
}
