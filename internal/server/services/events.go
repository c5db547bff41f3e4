package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repomanager.Events(s.db).List(ctx)
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	return s.repomanager.Events(s.db).GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.Title == "" || event.Location == "" || event.Date.IsZero() {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Events(s.db).Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Events(s.db).Delete(ctx, id)
}
