package services

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
)

// maxProposalTitleLen matches the column width in the proposals table.
const maxProposalTitleLen = 70

type ProposalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProposalService(db *sql.DB, m repomanager.RepositoryManager) *ProposalService {
	return &ProposalService{db: db, repomanager: m}
}

func (s *ProposalService) Create(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	if proposal.Title == "" || proposal.Description == "" || proposal.UserID == "" {
		return nil, common.ErrorValidation
	}
	if utf8.RuneCountInString(proposal.Title) > maxProposalTitleLen {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Proposals(s.db).Create(ctx, proposal)
	if err != nil {
		return nil, fmt.Errorf("error creating proposal: %w", err)
	}
	return created, nil
}

func (s *ProposalService) List(ctx context.Context) ([]*models.Proposal, error) {
	return s.repomanager.Proposals(s.db).List(ctx)
}

func (s *ProposalService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Proposals(s.db).Delete(ctx, id)
}
