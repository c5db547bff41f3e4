package volunteers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func (r *PostgresRepository) Create(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error) {
	query := `
		INSERT INTO volunteers (user_id, availability)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, volunteer.UserID, volunteer.Availability).
		Scan(&volunteer.ID, &volunteer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return volunteer, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Volunteer, error) {
	query := `
		SELECT id, user_id, availability, created_at
		FROM volunteers
		WHERE user_id = $1
	`

	v := &models.Volunteer{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&v.ID, &v.UserID, &v.Availability, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadEvents(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT id, user_id, availability, created_at
		FROM volunteers
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Volunteer
	for rows.Next() {
		v := &models.Volunteer{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.Availability, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for _, v := range result {
		if err := r.loadEvents(ctx, v); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PostgresRepository) AssignEvent(ctx context.Context, volunteerID, eventID string) error {
	query := `
		INSERT INTO volunteer_events (volunteer_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, volunteerID, eventID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) loadEvents(ctx context.Context, v *models.Volunteer) error {
	query := `SELECT event_id FROM volunteer_events WHERE volunteer_id = $1`

	rows, err := r.db.QueryContext(ctx, query, v.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		v.EventIDs = append(v.EventIDs, id)
	}
	return rows.Err()
}
