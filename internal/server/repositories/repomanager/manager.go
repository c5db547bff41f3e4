package repomanager

import (
	"context"
	"database/sql"

	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/repositories/benefits"
	"github.com/fundacionraices/backend/internal/server/repositories/donations"
	"github.com/fundacionraices/backend/internal/server/repositories/events"
	"github.com/fundacionraices/backend/internal/server/repositories/kitchens"
	"github.com/fundacionraices/backend/internal/server/repositories/news"
	"github.com/fundacionraices/backend/internal/server/repositories/partners"
	"github.com/fundacionraices/backend/internal/server/repositories/proposals"
	"github.com/fundacionraices/backend/internal/server/repositories/sponsors"
	"github.com/fundacionraices/backend/internal/server/repositories/users"
	"github.com/fundacionraices/backend/internal/server/repositories/volunteers"
	"github.com/fundacionraices/backend/internal/server/repositories/workshops"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repository calls inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	News(db dbx.DBTX) news.Repository
	Sponsors(db dbx.DBTX) sponsors.Repository
	Partners(db dbx.DBTX) partners.Repository
	Donations(db dbx.DBTX) donations.Repository
	Events(db dbx.DBTX) events.Repository
	Volunteers(db dbx.DBTX) volunteers.Repository
	Workshops(db dbx.DBTX) workshops.Repository
	Benefits(db dbx.DBTX) benefits.Repository
	Kitchens(db dbx.DBTX) kitchens.Repository
	Proposals(db dbx.DBTX) proposals.Repository
}
