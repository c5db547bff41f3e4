package benefits

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Benefit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, image FROM benefits ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Benefit
	for rows.Next() {
		b := &models.Benefit{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Benefit, error) {
	b := &models.Benefit{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, image FROM benefits WHERE id = $1`, id).
		Scan(&b.ID, &b.Title, &b.Description, &b.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, benefit *models.Benefit) (*models.Benefit, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO benefits (title, description, image) VALUES ($1, $2, $3) RETURNING id`,
		benefit.Title, benefit.Description, benefit.Image).Scan(&benefit.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return benefit, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM benefits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
