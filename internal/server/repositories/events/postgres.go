package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, location, date, image
		FROM events
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &e.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, title, description, location, date, image
		FROM events
		WHERE id = $1
	`

	e := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &e.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (title, description, location, date, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, event.Title, event.Description,
		event.Location, event.Date, event.Image).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
