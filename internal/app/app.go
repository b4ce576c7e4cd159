package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/legend1349/USYDSTRATA2025/internal/config"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/storage"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App wires config, the DB pool, the blob store and the services.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Blobs  storage.Store

	LevyRepo repositories.LevyRepository

	AuthService        services.AuthService
	StrataRollService  services.StrataRollService
	MaintenanceService services.MaintenanceService
	DocumentService    services.DocumentService
	FinanceService     services.FinanceService
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("Connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	if err := migrate(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	blobs, err := storage.Open(context.Background())
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("open blob store: %w", err)
	}
	utils.Logger.Infof("Blob store driver: %s", blobs.Driver())

	ownerRepo := repositories.NewOwnerRepository(dbPool)
	maintenanceRepo := repositories.NewMaintenanceRequestRepository(dbPool)
	documentRepo := repositories.NewDocumentRepository(dbPool)
	levyRepo := repositories.NewLevyRepository(dbPool)
	budgetRepo := repositories.NewBudgetItemRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	var notifier services.Notifier
	if cfg.NotificationsEnabled() {
		notifier = services.NewSendgridNotifier(cfg.SendgridAPIKey, cfg.NotifyFromEmail, cfg.NotifyToEmail)
	} else {
		notifier = services.NewNopNotifier()
	}

	a := &App{
		Config:             cfg,
		DB:                 dbPool,
		Blobs:              blobs,
		LevyRepo:           levyRepo,
		AuthService:        services.NewAuthService(userRepo, cfg.SessionSecret),
		StrataRollService:  services.NewStrataRollService(ownerRepo),
		MaintenanceService: services.NewMaintenanceService(maintenanceRepo, notifier),
		DocumentService:    services.NewDocumentService(documentRepo, blobs),
		FinanceService:     services.NewFinanceService(levyRepo, budgetRepo),
	}

	if err := a.seedAdminAccount(context.Background()); err != nil {
		utils.Logger.WithError(err).Warn("Failed to seed admin account")
	}
	return a, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
