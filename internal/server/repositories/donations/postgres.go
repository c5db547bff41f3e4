package donations

import (
	"context"
	"fmt"

	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	query := `
		INSERT INTO donations (full_name, email, amount, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, donation.FullName, donation.Email,
		donation.Amount, donation.Date, donation.UserID).Scan(&donation.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return donation, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Donation, error) {
	query := `
		SELECT id, coalesce(full_name, ''), coalesce(email, ''), amount, date, user_id
		FROM donations
		ORDER BY date DESC
	`
	return r.query(ctx, query)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Donation, error) {
	query := `
		SELECT id, coalesce(full_name, ''), coalesce(email, ''), amount, date, user_id
		FROM donations
		WHERE user_id = $1
		ORDER BY date DESC
	`
	return r.query(ctx, query, userID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Donation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Donation
	for rows.Next() {
		d := &models.Donation{}
		if err := rows.Scan(&d.ID, &d.FullName, &d.Email, &d.Amount, &d.Date, &d.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
