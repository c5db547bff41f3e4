// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/fundacionraices/backend/internal/dbx"
	"github.com/fundacionraices/backend/internal/server/migrations"
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

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) News(db dbx.DBTX) news.Repository {
	return news.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sponsors(db dbx.DBTX) sponsors.Repository {
	return sponsors.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Partners(db dbx.DBTX) partners.Repository {
	return partners.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Donations(db dbx.DBTX) donations.Repository {
	return donations.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Volunteers(db dbx.DBTX) volunteers.Repository {
	return volunteers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Workshops(db dbx.DBTX) workshops.Repository {
	return workshops.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Benefits(db dbx.DBTX) benefits.Repository {
	return benefits.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Kitchens(db dbx.DBTX) kitchens.Repository {
	return kitchens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Proposals(db dbx.DBTX) proposals.Repository {
	return proposals.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
