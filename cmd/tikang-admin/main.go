package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tikang-admin/internal/api"
	"tikang-admin/internal/audit"
	"tikang-admin/internal/cli"
	"tikang-admin/internal/config"
	"tikang-admin/internal/events"
	"tikang-admin/internal/export"
	"tikang-admin/internal/logging"
	"tikang-admin/internal/metrics"
	"tikang-admin/internal/notify"
	"tikang-admin/internal/repository"
	"tikang-admin/internal/service"
	"tikang-admin/internal/session"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := os.Getenv("TIKANG_ADMIN_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Fatal error: %v", err)
		return 1
	}

	logger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		log.Printf("Fatal error: %v", err)
		return 1
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	metrics.Register()
	if cfg.Monitoring.PrometheusEnabled {
		go func() {
			if err := metrics.Serve(cfg.Monitoring.PrometheusPort); err != nil {
				logger.Error().Err(err).Msg("metrics server error")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := buildSessionRepository(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("session storage init failed")
		return 1
	}

	store := session.NewStore(repo, logger)
	client := api.NewClient(cfg.API, store, logger)
	store.AttachAPI(client)

	if cfg.Session.Backend == "redis" && cfg.API.CacheTTL > 0 {
		client.UseRedisCache(repository.NewRedisClient(cfg.Session.Redis), cfg.API.CacheTTL)
	}

	bus := events.NewEventBus()

	sinks := []notify.Sink{notify.NewWriterSink(os.Stderr)}
	if cfg.Telegram.Enabled {
		telegram, err := notify.NewTelegramSink(cfg.Telegram)
		if err != nil {
			logger.Error().Err(err).Msg("telegram sink init failed, continuing without it")
		} else {
			sinks = append(sinks, telegram)
		}
	}
	retry := notify.RetryPolicy{MaxRetries: 3, InitialDelay: 200 * time.Millisecond, MaxDelay: 5 * time.Second, BackoffFactor: 2}
	notifier := notify.NewNotifier(logger, retry, sinks...)
	defer notifier.Close()
	notify.ForwardEvents(bus, notifier)

	var auditLog *audit.Log
	if cfg.Audit.Enabled {
		auditLog, err = audit.Open(cfg.Audit.Path)
		if err != nil {
			logger.Error().Err(err).Msg("audit log init failed")
			return 1
		}
		defer auditLog.Close()
	}

	actor := func() string {
		if admin := store.Admin(); admin != nil {
			return admin.Email
		}
		return ""
	}
	core := service.NewCore(cli.NewStdinConfirmer(), notifier, bus, auditLog, logger, actor)

	app := &cli.App{
		Config:     cfg,
		Logger:     logger,
		Session:    store,
		API:        client,
		Core:       core,
		Bookings:   service.NewBookingService(client, core),
		Properties: service.NewPropertyService(client, core),
		Users:      service.NewUserService(client, core),
		Wallet:     service.NewWalletService(client, core),
		Account:    service.NewAccountService(client, core),
		Excel:      export.NewExcelWriter(cfg.Exports.Path, logger),
		AuditLog:   auditLog,
	}

	return cli.Execute(ctx, app)
}

func buildSessionRepository(cfg *config.Config, logger *zerolog.Logger) (repository.SessionRepository, error) {
	filePath := cfg.Session.FilePath
	if filePath == "" {
		path, err := repository.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		filePath = path
	}
	fileRepo := repository.NewFileSessionRepository(filePath, cfg.Session.TTL)

	if cfg.Session.Backend != "redis" {
		return fileRepo, nil
	}

	// Redis primary with the file store as fallback; sessions survive a
	// redis outage.
	redisRepo := repository.NewRedisSessionRepository(repository.NewRedisClient(cfg.Session.Redis), cfg.Session.TTL)
	return repository.NewFailoverSessionRepository(redisRepo, fileRepo, logger), nil
}
