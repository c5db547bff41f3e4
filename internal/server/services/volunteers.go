package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type VolunteerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVolunteerService(db *sql.DB, m repomanager.RepositoryManager) *VolunteerService {
	return &VolunteerService{db: db, repomanager: m}
}

// Enroll creates a volunteer profile for the user and grants the Volunteer
// role, in one transaction. A user has at most one profile; enrolling twice
// reports ErrorAlreadyExists and leaves the existing profile untouched.
func (s *VolunteerService) Enroll(ctx context.Context, userID, availability string) (*models.Volunteer, error) {
	if userID == "" {
		return nil, common.ErrorValidation
	}

	var created *models.Volunteer
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := s.repomanager.Volunteers(tx).Create(ctx, &models.Volunteer{
			UserID:       userID,
			Availability: availability,
		})
		if err != nil {
			return err
		}
		if err := s.repomanager.Users(tx).GrantRole(ctx, userID, models.RoleVolunteer); err != nil {
			return err
		}
		created = v
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error enrolling volunteer: %w", err)
	}
	return created, nil
}

func (s *VolunteerService) List(ctx context.Context) ([]*models.Volunteer, error) {
	return s.repomanager.Volunteers(s.db).List(ctx)
}

func (s *VolunteerService) GetByUser(ctx context.Context, userID string) (*models.Volunteer, error) {
	return s.repomanager.Volunteers(s.db).GetByUserID(ctx, userID)
}

// AssignEvent registers the volunteer for an event. Unknown volunteer or
// event ids report ErrorNotFound.
func (s *VolunteerService) AssignEvent(ctx context.Context, volunteerID, eventID string) error {
	if volunteerID == "" || eventID == "" {
		return common.ErrorValidation
	}
	return s.repomanager.Volunteers(s.db).AssignEvent(ctx, volunteerID, eventID)
}
