package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/eld-logs/internal/api"
	"github.com/99minutos/eld-logs/internal/api/handler"
	"github.com/99minutos/eld-logs/internal/core/eldlog"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/service"
	"github.com/99minutos/eld-logs/internal/core/timeline"
	"github.com/99minutos/eld-logs/internal/infrastructure/cache"
	"github.com/99minutos/eld-logs/internal/infrastructure/config"
	"github.com/99minutos/eld-logs/internal/infrastructure/credentials"
	"github.com/99minutos/eld-logs/internal/infrastructure/db/mongo"
	"github.com/99minutos/eld-logs/internal/infrastructure/db/redis"
	"github.com/99minutos/eld-logs/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API.",
		Long:  "serve reads its configuration from the environment (PORT, JWT_SECRET, API_CLIENTS, REDIS_ADDR, ...) and serves until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			logger.Init(loggerOptions(cfg))
			return serve(ctx, cfg, logger.Get())
		},
	}
}

// loggerOptions maps config onto logger options. Production always logs JSON.
func loggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: "eldlogs",
	}
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	store, storeChecks, closeStore, err := buildCredentials(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	renderCache, checks, closeCache, err := buildCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()
	if checks == nil {
		checks = map[string]handler.DependencyCheck{}
	}
	for name, check := range storeChecks {
		checks[name] = check
	}

	frame := timeline.Frame{Width: cfg.Timeline.Width, Height: cfg.Timeline.Height}
	if err := frame.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	timelineSvc := service.NewTimelineService(renderCache, frame, log)
	mapSvc := service.NewMapService(log)

	e := api.NewRouter(api.Deps{
		JWTSecret: cfg.Auth.JWTSecret,
		Location:  cfg.Location(),
		Auth:      service.NewAuthService(store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Timeline:  timelineSvc,
		Maps:      mapSvc,
		Trips:     service.NewTripService(timelineSvc, mapSvc, eldlog.PropertyCarrier, log),
		Checks:    checks,
		Log:       log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// buildCredentials returns the Mongo client registry when MONGO_URI is set and
// the static API_CLIENTS store otherwise.
func buildCredentials(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.CredentialStore, map[string]handler.DependencyCheck, func(), error) {
	if cfg.Mongo.URI == "" {
		store, err := credentials.NewStore(cfg.Auth.Clients, cfg.Auth.Admins)
		if err != nil {
			return nil, nil, nil, err
		}
		if store.Len() == 0 {
			log.Warn().Msg("API_CLIENTS is empty, no client can obtain a token")
		}
		return store, nil, func() {}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() { disconnectMongo(client, log) }

	repo := mongo.NewClientRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	if len(cfg.Auth.Clients) > 0 {
		log.Warn().Msg("MONGO_URI is set, ignoring API_CLIENTS")
	}
	log.Info().Str("db", cfg.Mongo.Database).Msg("mongo client registry enabled")

	checks := map[string]handler.DependencyCheck{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}
	return repo, checks, closeFn, nil
}

func disconnectMongo(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("disconnecting mongo client")
	}
}

// buildCache returns the in-process cache, fronting Redis when REDIS_ADDR is
// set. The returned checks feed the readiness probe.
func buildCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.RenderCache, map[string]handler.DependencyCheck, func(), error) {
	memory := cache.NewMemory(cfg.Cache.Size, cfg.Cache.TTL)
	if cfg.Redis.Addr == "" {
		return memory, nil, func() {}, nil
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("redis render cache enabled")

	checks := map[string]handler.DependencyCheck{
		"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}
	tiered := cache.NewTiered(memory, redis.NewRenderCache(rdb, cfg.Cache.TTL), log)
	return tiered, checks, func() { closeRedis(rdb, log) }, nil
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("closing redis client")
	}
}
