// Package app boots the process-wide resources (entity store, rate
// limiter, log sink) from config and releases them on shutdown.
//
//	a, err := app.Boot(ctx)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	handler := kernel.NewHTTPKernel(a.Store, a.Limiter).Handler()
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/config"
	"github.com/shashiranjanraj/fooddash/pkg/cache"
	"github.com/shashiranjanraj/fooddash/pkg/database"
	"github.com/shashiranjanraj/fooddash/pkg/logger"
)

const logCollection = "logs"

// Application holds the resources shared by every command.
type Application struct {
	Store   *repositories.Store
	Limiter cache.Limiter

	mongo   *mongo.Client
	redis   *redis.Client
	logSink *logger.MongoHandler
}

// Boot loads config and connects the configured store driver. With the
// mongo driver the client is opened once here and handed to the store and
// the optional log sink, and the store's indexes are created before Boot
// returns.
func Boot(ctx context.Context) (*Application, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &Application{}

	switch config.StoreDriver() {
	case "memory":
		a.Store = repositories.NewMemoryStore()
	default:
		client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDatabase())
		if err != nil {
			return nil, err
		}
		a.mongo = client
		a.Store = repositories.NewMongoStore(db)

		if config.LogToMongo() {
			a.logSink = logger.NewMongoHandler(db.Collection(logCollection), slog.LevelInfo)
			logger.Mirror(a.logSink)
		}
	}

	if err := prepareStore(ctx, a.Store); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("store connected", "driver", a.Store.Driver())
	return a, nil
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// prepareStore creates the store's indexes before any request is served;
// without the unique email index duplicate users are accepted.
func prepareStore(ctx context.Context, s indexer) error {
	if err := s.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("store indexes: %w", err)
	}
	return nil
}

// Services returns a fresh service set over the store.
func (a *Application) Services() *services.Services {
	return services.New(a.Store)
}

// EnableRateLimit installs the per-IP limiter: Redis fixed windows when
// REDIS_ADDR is set, in-memory token buckets otherwise. A Redis that cannot
// be reached at boot falls back to memory.
func (a *Application) EnableRateLimit(ctx context.Context) {
	perMinute := config.RateLimitPerMinute()
	if perMinute <= 0 {
		return
	}

	if addr := config.RedisAddr(); addr != "" {
		rdb, err := cache.Connect(ctx, addr, config.RedisPassword())
		if err == nil {
			a.redis = rdb
			a.Limiter = cache.NewRedisLimiter(rdb, perMinute, time.Minute)
			logger.Info("rate limiter ready", "backend", "redis", "per_minute", perMinute)
			return
		}
		logger.Warn("redis unavailable, using in-memory rate limiter", "addr", addr, "error", err)
	}

	a.Limiter = cache.NewMemoryLimiter(perMinute)
	logger.Info("rate limiter ready", "backend", "memory", "per_minute", perMinute)
}

// Close flushes the log sink and disconnects Redis and Mongo, in that
// order, since the sink writes through the Mongo client.
func (a *Application) Close() {
	if a.logSink != nil {
		logger.Reset()
		a.logSink.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.Warn("redis close", "error", err)
		}
	}
	if err := database.Disconnect(a.mongo); err != nil {
		logger.Warn("mongo disconnect", "error", err)
	}
}
