package uniswap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/uniswap/docs"
	"github.com/magabrotheeeer/uniswap/internal/cache"
	"github.com/magabrotheeeer/uniswap/internal/config"
	"github.com/magabrotheeeer/uniswap/internal/lib/docfmt"
	"github.com/magabrotheeeer/uniswap/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/uniswap/internal/lib/sl"
	"github.com/magabrotheeeer/uniswap/internal/metrics"
	"github.com/magabrotheeeer/uniswap/internal/migrations"
	catalogservice "github.com/magabrotheeeer/uniswap/internal/services/catalog"
	mediaservice "github.com/magabrotheeeer/uniswap/internal/services/media"
	userservice "github.com/magabrotheeeer/uniswap/internal/services/user"
	"github.com/magabrotheeeer/uniswap/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server  *http.Server
	logger  *slog.Logger
	db      *storage.Storage
	closers []io.Closer
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.uniswap.New"

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	app := &App{
		logger: logger,
		db:     db,
	}

	var userCache userservice.Cache = cache.Noop{}
	if cfg.RedisConnection.Enabled {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, cacheRedis)
		userCache = cacheRedis
	}

	var publisher catalogservice.Publisher = catalogservice.LogPublisher{Log: logger}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, p)
		publisher = p
	}

	description, err := docfmt.Format(cfg.Docs.Dir, cfg.Docs.Version)
	if err != nil {
		logger.Warn("api description is not available", sl.Err(err))
	}
	docs.SwaggerInfo.Description = description
	docs.SwaggerInfo.Version = cfg.Docs.Version

	m := metrics.New()
	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Users:          userservice.NewUserService(db, userCache, cfg.RedisConnection.TTL, m, logger),
		Catalog:        catalogservice.NewCatalogService(publisher, logger),
		Media:          mediaservice.NewMediaService(cfg.Media.BaseURL, logger),
		Metrics:        m,
		DB:             db.DB,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		DocsDir:        cfg.Docs.Dir,
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает ресурсы в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error("failed to close resource", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
