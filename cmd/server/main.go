package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendancehub/config"
	_ "attendancehub/docs"
	"attendancehub/internal/adapters/auth"
	"attendancehub/internal/adapters/email"
	"attendancehub/internal/adapters/geocoding"
	httpDelivery "attendancehub/internal/delivery/http"
	"attendancehub/internal/delivery/http/controllers"
	"attendancehub/internal/domain"
	"attendancehub/internal/metrics"
	"attendancehub/internal/repository/postgres"
	"attendancehub/internal/services"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	outboundTimeout = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title Attendance Hub API
// @version 1.0
// @description Event creation, invitations, RSVP and check-in.
// @BasePath /
// @securityDefinitions.apikey AccessKey
// @in header
// @name X-Access-Key
// @description Default header; deployments can rename it with CREDENTIAL_HEADER.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database not reachable at startup", "err", err)
	}
	cancel()

	store := postgres.NewStore(db)
	eventRepo := postgres.NewEventRepository(store)
	attendanceRepo := postgres.NewAttendanceRepository(store)
	userRepo := postgres.NewUserRepository(store)

	httpClient := &http.Client{Timeout: outboundTimeout}
	geocoder, closeRedis := newGeocoder(cfg, httpClient, logger)
	defer closeRedis()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to load email templates", "err", err)
		os.Exit(1)
	}

	signer := auth.NewSigner(cfg.AccessKeySecret)
	identities, err := auth.ParseWhitelist(cfg.TestIdentities)
	if err != nil {
		logger.Error("invalid TEST_IDENTITIES", "err", err)
		os.Exit(1)
	}
	var provider domain.IdentityProvider
	if cfg.GoogleClientID != "" {
		provider = auth.NewGoogleIdentityProvider(httpClient, cfg.GoogleClientID, "")
	}

	collector := metrics.NewCollector("")

	gate := services.NewAccessGate(signer)
	eventService := services.NewEventService(eventRepo, geocoder, cfg.RequestTimeout, logger)
	userService := services.NewUserService(userRepo, cfg.RequestTimeout, logger)
	authService := services.NewAuthService(signer, auth.NewWhitelist(identities), provider, cfg.RequestTimeout, logger)
	attendanceService := services.NewAttendanceService(services.AttendanceServiceConfig{
		AttendanceRepo: attendanceRepo,
		EventRepo:      eventRepo,
		UserRepo:       userRepo,
		EmailService:   services.NewEmailService(mailer, renderer, logger),
		Observer:       collector,
		PublicBaseURL:  cfg.PublicBaseURL,
		Timeout:        cfg.RequestTimeout,
		Logger:         logger,
	})

	handler := httpDelivery.NewHandler(httpDelivery.Controllers{
		Auth:       controllers.NewAuthController(logger, authService),
		Users:      controllers.NewUserController(logger, userService, eventService, gate),
		Events:     controllers.NewEventController(logger, eventService, gate),
		Attendance: controllers.NewAttendanceController(logger, attendanceService, eventService, gate),
		Health:     controllers.NewHealthController(logger, db, cfg.CommitID),
	}, httpDelivery.RouterConfig{
		Logger:           logger,
		CredentialHeader: cfg.CredentialHeader,
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		Metrics:          collector,
		MetricsHandler:   collector.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "commit", cfg.CommitID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

// newGeocoder returns nil when no API key is configured. With REDIS_URL set,
// lookups are cached in Redis.
func newGeocoder(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (domain.Geocoder, func()) {
	noop := func() {}
	if cfg.GeocodingAPIKey == "" {
		logger.Info("geocoding disabled")
		return nil, noop
	}
	geocoder := geocoding.NewClient(httpClient, cfg.GeocodingAPIKey, cfg.GeocodingBaseURL)
	if cfg.RedisURL == "" {
		return geocoder, noop
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, geocode cache disabled", "err", err)
		return geocoder, noop
	}
	rdb := redis.NewClient(opts)
	return geocoding.NewCachedResolver(geocoder, rdb, cfg.GeocodeCacheTTL, logger), func() { _ = rdb.Close() }
}
