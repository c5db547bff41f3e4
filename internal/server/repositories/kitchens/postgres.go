package kitchens

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.CommunityKitchen, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, address, description, image FROM community_kitchens ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CommunityKitchen
	for rows.Next() {
		k := &models.CommunityKitchen{}
		if err := rows.Scan(&k.ID, &k.Name, &k.Address, &k.Description, &k.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.CommunityKitchen, error) {
	k := &models.CommunityKitchen{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, description, image FROM community_kitchens WHERE id = $1`, id).
		Scan(&k.ID, &k.Name, &k.Address, &k.Description, &k.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return k, nil
}

func (r *PostgresRepository) Create(ctx context.Context, kitchen *models.CommunityKitchen) (*models.CommunityKitchen, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO community_kitchens (name, address, description, image)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		kitchen.Name, kitchen.Address, kitchen.Description, kitchen.Image).Scan(&kitchen.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return kitchen, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM community_kitchens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
