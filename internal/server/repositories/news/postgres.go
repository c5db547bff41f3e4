package news

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.News, error) {
	query := `
		SELECT id, title, description, primary_image, secondary_image, tertiary_image, date
		FROM news
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.News
	for rows.Next() {
		item := &models.News{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.PrimaryImage, &item.SecondaryImage, &item.TertiaryImage, &item.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.News, error) {
	query := `
		SELECT id, title, description, primary_image, secondary_image, tertiary_image, date
		FROM news
		WHERE id = $1
	`

	item := &models.News{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Description,
		&item.PrimaryImage, &item.SecondaryImage, &item.TertiaryImage, &item.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.News) (*models.News, error) {
	query := `
		INSERT INTO news (title, description, primary_image, secondary_image, tertiary_image, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, item.Title, item.Description,
		item.PrimaryImage, item.SecondaryImage, item.TertiaryImage, item.Date).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
