package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/server/models"
)

func TestSponsorList_DefaultsPagination(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeSponsorsRepo{
		items: []*models.Sponsor{{ID: "s1", Name: "Acme", Logo: "acme.png"}},
		total: 12,
	}
	s := NewSponsorService(db, &fakeRepoManager{sponsors: repo})

	page, err := s.List(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 12, page.Total)
}

func TestSponsorCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewSponsorService(db, &fakeRepoManager{sponsors: &fakeSponsorsRepo{}})

	_, err := s.Create(context.Background(), &models.Sponsor{Name: "Acme"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Create(context.Background(), &models.Sponsor{Logo: "l.png"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	created, err := s.Create(context.Background(), &models.Sponsor{Name: "Acme", Logo: "l.png"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestPartnerList_EmptyPageIsNotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewPartnerService(db, &fakeRepoManager{partners: &fakePartnersRepo{total: 0}})

	_, err := s.List(context.Background(), 5, 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPartnerList_ReturnsPage(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakePartnersRepo{
		items: []*models.Partner{{ID: "p1", Name: "Coop", Email: "coop@example.org"}},
		total: 1,
	}
	s := NewPartnerService(db, &fakeRepoManager{partners: repo})

	page, err := s.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Coop", page.Data[0].Name)
}
