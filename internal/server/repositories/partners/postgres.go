package partners

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

func (r *PostgresRepository) ListPage(ctx context.Context, limit, page int) ([]*models.Partner, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM partners`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	query := `
		SELECT id, name, email, phone, created_at
		FROM partners
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Partner
	for rows.Next() {
		p := &models.Partner{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM partners
		WHERE id = $1
	`

	p := &models.Partner{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	query := `
		INSERT INTO partners (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, partner.Name, partner.Email, partner.Phone).
		Scan(&partner.ID, &partner.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return partner, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
