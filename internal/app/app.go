package app

import (
	"fmt"

	"shift-tracker/internal/middleware"
	"shift-tracker/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resources are the connections owned by the API process.
type Resources struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (r Resources) Close() {
	if r.Redis != nil {
		_ = r.Redis.Close()
	}
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func BuildApp(router *gin.Engine, cfg Config) (Resources, error) {
	logger := zap.L().Named("app")

	if err := cfg.RequireAPISecrets(); err != nil {
		return Resources{}, err
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return Resources{}, err
	}
	if err := Migrate(db); err != nil {
		return Resources{}, err
	}
	logger.Info("database ready")

	res := Resources{DB: db}

	// The dashboard cache and idempotency keys degrade to no-ops without redis.
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			res.Close()
			return Resources{}, err
		}
		res.Redis = rdb
	} else {
		logger.Warn("REDIS_ADDR not set, running without cache and idempotency")
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L().Named("http")))

	if err := registerModules(router, cfg, res.DB, res.Redis); err != nil {
		res.Close()
		return Resources{}, fmt.Errorf("register modules: %w", err)
	}
	return res, nil
}
