package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/KoshakFSB/WCWD/internal/confirmgate"
	"github.com/KoshakFSB/WCWD/internal/cryptopay"
	"github.com/KoshakFSB/WCWD/internal/database"
	"github.com/KoshakFSB/WCWD/internal/handlers"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/KoshakFSB/WCWD/internal/notify"
	"github.com/KoshakFSB/WCWD/internal/repository"
	"github.com/KoshakFSB/WCWD/internal/scheduler"
	"github.com/KoshakFSB/WCWD/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server    *http.Server
	db        *sql.DB
	scheduler *scheduler.Scheduler
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	services := config.NewServiceState(
		string(models.ServiceWhatsapp),
		string(models.ServiceMax),
		string(models.ServiceSms),
	)

	admins := config.NewAdminState(cfg.MainAdminIDs, cfg.AdminIDs)
	notifier := notify.NewClient(cfg.NotifyAddress, admins)
	gateway := cryptopay.NewClient(cfg.CryptoPayAddress, cfg.CryptoPayToken, cfg.CryptoPayAsset)
	gate := confirmgate.New()

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	smsWorkRepo := repository.NewSmsWorkRepository(db)

	userService := service.NewUserService(userRepo, notifier, admins)
	accountService := service.NewAccountService(accountRepo, userRepo, gate, notifier, admins, services)
	payoutService := service.NewPayoutService(withdrawalRepo, userRepo, gateway, notifier, admins)
	smsWorkService := service.NewSmsWorkService(smsWorkRepo, userRepo, notifier, admins, services)

	handler := handlers.NewHandler(userService, accountService, payoutService, smsWorkService, services, cfg.SecretKey)
	r := handlers.NewRouter(handler, cfg.SecretKey, admins)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server:    server,
		db:        db,
		scheduler: scheduler.New(accountService, payoutService),
	}, nil
}

func (a *App) Run() error {
	if err := a.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("stopping scheduler...")
	a.scheduler.Stop()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
