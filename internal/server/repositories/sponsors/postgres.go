package sponsors

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

func (r *PostgresRepository) ListPage(ctx context.Context, limit, page int) ([]*models.Sponsor, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM sponsors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := `
		SELECT id, name, logo, web_url, created_at
		FROM sponsors
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Sponsor
	for rows.Next() {
		s := &models.Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Logo, &s.WebURL, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Sponsor, error) {
	query := `
		SELECT id, name, logo, web_url, created_at
		FROM sponsors
		WHERE id = $1
	`

	s := &models.Sponsor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Logo, &s.WebURL, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, sponsor *models.Sponsor) (*models.Sponsor, error) {
	query := `
		INSERT INTO sponsors (name, logo, web_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, sponsor.Name, sponsor.Logo, sponsor.WebURL).
		Scan(&sponsor.ID, &sponsor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sponsor, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
