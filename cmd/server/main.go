// Command platefeed-server starts the food-delivery HTTP backend.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platefeed/server/internal/limiter"
	"github.com/platefeed/server/internal/media"
	"github.com/platefeed/server/internal/migrate"
	"github.com/platefeed/server/internal/repository/postgres"
	"github.com/platefeed/server/internal/server/httpapi"
	"github.com/platefeed/server/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	// Flags. DSN and JWT key are required and have no defaults.
	addr := flag.String("addr", ":3000", "listen address")
	dsn := flag.String("dsn", "", "PostgreSQL DSN (required)")
	jwtKey := flag.String("jwt-key", "", "HS256 signing key (required)")
	tokenTTL := flag.Duration("token-ttl", 7*24*time.Hour, "session token TTL")
	maxUpload := flag.Int64("max-upload", 64<<20, "max upload size in bytes")
	prod := flag.Bool("prod", false, "production mode (secure cookies)")
	s3Endpoint := flag.String("s3-endpoint", "", "S3-compatible endpoint for media (required)")
	s3Region := flag.String("s3-region", "us-east-1", "S3 region")
	s3Bucket := flag.String("s3-bucket", "platefeed-media", "S3 bucket for media")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	if *dsn == "" {
		logger.Fatal("missing database DSN (--dsn)")
	}
	if *jwtKey == "" {
		logger.Fatal("missing jwt signing key (--jwt-key)")
	}
	if *s3Endpoint == "" {
		logger.Fatal("missing media endpoint (--s3-endpoint)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, *dsn); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	pool, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		logger.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	db := &postgres.DB{Pool: pool}
	userRepo := postgres.NewIdentityRepo(db, postgres.TableUsers)
	partnerRepo := postgres.NewIdentityRepo(db, postgres.TableFoodPartners)
	foodRepo := postgres.NewFoodRepo(db)

	lim := limiter.NewPostgres(pool, 15*time.Minute, 5, 15*time.Minute)

	// Media store credentials come from the environment, not flags.
	store, err := media.NewS3(ctx, media.S3Config{
		Endpoint:  *s3Endpoint,
		Region:    *s3Region,
		Bucket:    *s3Bucket,
		AccessKey: os.Getenv("MEDIA_ACCESS_KEY"),
		SecretKey: os.Getenv("MEDIA_SECRET_KEY"),
	})
	if err != nil {
		logger.Fatal("media store", zap.Error(err))
	}

	// Services
	authSvc := service.NewAuthService(userRepo, partnerRepo, []byte(*jwtKey), *tokenTTL, lim)
	foodSvc := service.NewFoodService(foodRepo, store)

	api := httpapi.New(authSvc, foodSvc, logger, httpapi.Config{
		SecureCookies: *prod,
		MaxUploadSize: *maxUpload,
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
