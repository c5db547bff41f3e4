package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

type DonationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDonationService(db *sql.DB, m repomanager.RepositoryManager) *DonationService {
	return &DonationService{db: db, repomanager: m}
}

// Create records a donation. UserID is optional: anonymous donations carry
// only the donor details reported by the payment provider.
func (s *DonationService) Create(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	if donation.Amount == "" {
		return nil, common.ErrorValidation
	}
	if donation.Date.IsZero() {
		donation.Date = time.Now()
	}
	created, err := s.repomanager.Donations(s.db).Create(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("error creating donation: %w", err)
	}
	return created, nil
}

func (s *DonationService) List(ctx context.Context) ([]*models.Donation, error) {
	return s.repomanager.Donations(s.db).List(ctx)
}

func (s *DonationService) ListByUser(ctx context.Context, userID string) ([]*models.Donation, error) {
	return s.repomanager.Donations(s.db).ListByUser(ctx, userID)
}
