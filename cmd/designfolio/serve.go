package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/auth"
	"github.com/designfolio/internal/cache"
	"github.com/designfolio/internal/config"
	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/handler"
	"github.com/designfolio/internal/mail"
	"github.com/designfolio/internal/metrics"
	"github.com/designfolio/internal/router"
	"github.com/designfolio/internal/service"
	"github.com/designfolio/internal/site"
	"github.com/designfolio/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	pageCacheTTL    = time.Hour
)

func newServeCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the database on start")
	return cmd
}

func serve(parent context.Context, skipMigrate bool) error {
	cfg, log, gdb, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if !skipMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	pages, closeCache := pageCache(ctx, cfg, log)
	defer closeCache()

	m := metrics.New()
	svc := service.NewSet(gdb)

	storageCfg := storage.Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		MaxBytes:        cfg.UploadLimit,
	}
	images := storage.New(storage.NewS3Client(storageCfg), storageCfg, log.Named("storage"))

	gate, err := auth.NewGate(cfg.AdminEmail, cfg.AdminPassword, cfg.IsProduction())
	if err != nil {
		return err
	}

	api := handler.NewAPI(handler.Deps{
		Actions:     action.New(svc, images, pages, log.Named("action"), m),
		Site:        site.New(svc, pages, log.Named("site"), m),
		Gate:        gate,
		Mailer:      mail.NewResend(cfg.ResendAPIKey, cfg.MailFrom),
		Log:         log,
		Metrics:     m,
		ContactTo:   cfg.ContactTo,
		UploadLimit: cfg.UploadLimit,
	})

	engine, err := router.SetupRouter(api, router.Options{
		SessionSecret:  cfg.SessionSecret,
		Secure:         cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        m,
		Log:            log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}

// pageCache uses Redis when REDIS_URL is set and reachable, the process
// memory otherwise.
func pageCache(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (*cache.Pages, func()) {
	if cfg.RedisURL != "" {
		store, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err == nil {
			log.Info("page cache backed by redis")
			return cache.NewPages(store, pageCacheTTL), func() { store.Close() }
		}
		log.Warn("redis unavailable, using memory page cache", zap.Error(err))
	}
	return cache.NewPages(cache.NewMemoryStore(), pageCacheTTL), func() {}
}
