package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/fundacionraices/backend/internal/common"
	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/models"
	benefitsrepo "github.com/fundacionraices/backend/internal/server/repositories/benefits"
	donationsrepo "github.com/fundacionraices/backend/internal/server/repositories/donations"
	eventsrepo "github.com/fundacionraices/backend/internal/server/repositories/events"
	kitchensrepo "github.com/fundacionraices/backend/internal/server/repositories/kitchens"
	newsrepo "github.com/fundacionraices/backend/internal/server/repositories/news"
	partnersrepo "github.com/fundacionraices/backend/internal/server/repositories/partners"
	proposalsrepo "github.com/fundacionraices/backend/internal/server/repositories/proposals"
	sponsorsrepo "github.com/fundacionraices/backend/internal/server/repositories/sponsors"
	usersrepo "github.com/fundacionraices/backend/internal/server/repositories/users"
	volunteersrepo "github.com/fundacionraices/backend/internal/server/repositories/volunteers"
	workshopsrepo "github.com/fundacionraices/backend/internal/server/repositories/workshops"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeUsersRepo is an in-memory users.Repository keyed by lowercase email.
type fakeUsersRepo struct {
	byEmail map[string]*models.User
	roles   map[string][]string

	createErr error
	getErr    error
	rolesErr  error
	nextID    int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail: make(map[string]*models.User),
		roles:   make(map[string][]string),
	}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorDuplicateAccount
	}
	f.nextID++
	cp := *u
	cp.ID = string(rune('a' + f.nextID))
	f.byEmail[u.Email] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		cp := *u
		cp.PasswordHash = nil
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUsersRepo) GetRoles(ctx context.Context, userID string) ([]string, error) {
	if f.rolesErr != nil {
		return nil, f.rolesErr
	}
	return f.roles[userID], nil
}

func (f *fakeUsersRepo) GrantRole(ctx context.Context, userID, role string) error {
	for _, r := range f.roles[userID] {
		if r == role {
			return nil
		}
	}
	f.roles[userID] = append(f.roles[userID], role)
	return nil
}

func (f *fakeUsersRepo) RevokeRole(ctx context.Context, userID, role string) error {
	kept := f.roles[userID][:0]
	for _, r := range f.roles[userID] {
		if r != role {
			kept = append(kept, r)
		}
	}
	f.roles[userID] = kept
	return nil
}

type fakeVolunteersRepo struct {
	byUser    map[string]*models.Volunteer
	assignErr error
	createErr error
}

func newFakeVolunteersRepo() *fakeVolunteersRepo {
	return &fakeVolunteersRepo{byUser: make(map[string]*models.Volunteer)}
}

func (f *fakeVolunteersRepo) Create(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byUser[v.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *v
	cp.ID = "v-" + v.UserID
	f.byUser[v.UserID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeVolunteersRepo) GetByUserID(ctx context.Context, userID string) (*models.Volunteer, error) {
	v, ok := f.byUser[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVolunteersRepo) List(ctx context.Context) ([]*models.Volunteer, error) {
	out := make([]*models.Volunteer, 0, len(f.byUser))
	for _, v := range f.byUser {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVolunteersRepo) AssignEvent(ctx context.Context, volunteerID, eventID string) error {
	return f.assignErr
}

type fakeSponsorsRepo struct {
	items []*models.Sponsor
	total int
	err   error
}

func (f *fakeSponsorsRepo) ListPage(ctx context.Context, limit, page int) ([]*models.Sponsor, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

func (f *fakeSponsorsRepo) GetByID(ctx context.Context, id string) (*models.Sponsor, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSponsorsRepo) Create(ctx context.Context, s *models.Sponsor) (*models.Sponsor, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *s
	cp.ID = "s1"
	f.items = append(f.items, &cp)
	f.total++
	return &cp, nil
}

func (f *fakeSponsorsRepo) Delete(ctx context.Context, id string) error { return f.err }

type fakePartnersRepo struct {
	items []*models.Partner
	total int
	err   error
}

func (f *fakePartnersRepo) ListPage(ctx context.Context, limit, page int) ([]*models.Partner, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

func (f *fakePartnersRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	return nil, common.ErrorNotFound
}

func (f *fakePartnersRepo) Create(ctx context.Context, p *models.Partner) (*models.Partner, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *p
	cp.ID = "p1"
	return &cp, nil
}

func (f *fakePartnersRepo) Delete(ctx context.Context, id string) error { return f.err }

type fakeProposalsRepo struct {
	created []*models.Proposal
	err     error
}

func (f *fakeProposalsRepo) Create(ctx context.Context, p *models.Proposal) (*models.Proposal, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *p
	cp.ID = "pr1"
	f.created = append(f.created, &cp)
	return &cp, nil
}

func (f *fakeProposalsRepo) List(ctx context.Context) ([]*models.Proposal, error) {
	return f.created, f.err
}

func (f *fakeProposalsRepo) Delete(ctx context.Context, id string) error { return f.err }

// fakeRepoManager satisfies repomanager.RepositoryManager; tests populate
// only the repos their service touches.
type fakeRepoManager struct {
	users      *fakeUsersRepo
	volunteers *fakeVolunteersRepo
	sponsors   *fakeSponsorsRepo
	partners   *fakePartnersRepo
	proposals  *fakeProposalsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.users }
func (m *fakeRepoManager) News(db dbx.DBTX) newsrepo.Repository             { return nil }
func (m *fakeRepoManager) Sponsors(db dbx.DBTX) sponsorsrepo.Repository     { return m.sponsors }
func (m *fakeRepoManager) Partners(db dbx.DBTX) partnersrepo.Repository     { return m.partners }
func (m *fakeRepoManager) Donations(db dbx.DBTX) donationsrepo.Repository   { return nil }
func (m *fakeRepoManager) Events(db dbx.DBTX) eventsrepo.Repository         { return nil }
func (m *fakeRepoManager) Volunteers(db dbx.DBTX) volunteersrepo.Repository { return m.volunteers }
func (m *fakeRepoManager) Workshops(db dbx.DBTX) workshopsrepo.Repository   { return nil }
func (m *fakeRepoManager) Benefits(db dbx.DBTX) benefitsrepo.Repository     { return nil }
func (m *fakeRepoManager) Kitchens(db dbx.DBTX) kitchensrepo.Repository     { return nil }
func (m *fakeRepoManager) Proposals(db dbx.DBTX) proposalsrepo.Repository   { return m.proposals }
