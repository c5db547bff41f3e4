package workshops

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Workshop, error) {
	query := `
		SELECT id, name, description, day, schedule, capacity, image
		FROM workshops
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Workshop
	for rows.Next() {
		w := &models.Workshop{}
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Day,
			&w.Schedule, &w.Capacity, &w.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Workshop, error) {
	query := `
		SELECT id, name, description, day, schedule, capacity, image
		FROM workshops
		WHERE id = $1
	`

	w := &models.Workshop{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.Description,
		&w.Day, &w.Schedule, &w.Capacity, &w.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return w, nil
}

func (r *PostgresRepository) Create(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error) {
	query := `
		INSERT INTO workshops (name, description, day, schedule, capacity, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, workshop.Name, workshop.Description,
		workshop.Day, workshop.Schedule, workshop.Capacity, workshop.Image).Scan(&workshop.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return workshop, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workshops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
