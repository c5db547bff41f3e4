// Package server initializes and runs the platform API server: it wires
// config, logging, the database, repositories, services and the HTTP
// router, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundacionraices/backend/internal/logging"
	"github.com/fundacionraices/backend/internal/server/config"
	"github.com/fundacionraices/backend/internal/server/httpapi"
	"github.com/fundacionraices/backend/internal/server/repositories/repomanager"
	"github.com/fundacionraices/backend/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	router http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	h := &httpapi.Handlers{
		Auth:       services.NewAuthService(db, rm, cfg),
		Users:      services.NewUserService(db, rm),
		News:       services.NewNewsService(db, rm),
		Sponsors:   services.NewSponsorService(db, rm),
		Partners:   services.NewPartnerService(db, rm),
		Donations:  services.NewDonationService(db, rm),
		Events:     services.NewEventService(db, rm),
		Volunteers: services.NewVolunteerService(db, rm),
		Workshops:  services.NewWorkshopService(db, rm),
		Benefits:   services.NewBenefitService(db, rm),
		Kitchens:   services.NewCommunityKitchenService(db, rm),
		Proposals:  services.NewProposalService(db, rm),
		Storage:    services.NewStorageService(cfg),
	}

	router := httpapi.NewRouter(h, db, []byte(cfg.JWTSecret), logger.With("module", "http"))

	return &App{config: cfg, logger: logger, db: db, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then drains in-flight requests before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err)
	}

	return nil
}
