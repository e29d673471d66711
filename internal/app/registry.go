package app

import (
	"time"

	"shift-tracker/internal/analytics"
	"shift-tracker/internal/auth"
	"shift-tracker/internal/messaging/kafka"
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/organization"
	"shift-tracker/internal/rbac"
	"shift-tracker/internal/rbac/infra"
	"shift-tracker/internal/shared/clock"
	"shift-tracker/internal/shift"
	"shift-tracker/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

func registerModules(
	router *gin.Engine,
	cfg Config,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	clk := clock.New()

	// --- Repositories ---
	orgRepo := organization.NewRepository(db)
	userRepo := user.NewRepository(db)
	shiftRepo := shift.NewRepository(db)
	analyticsRepo := analytics.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.DefaultPolicies())
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.IdPSecret, cfg.AccessTokenTTL, clk)
	authService := auth.NewService(db, tokens, userRepo, orgRepo)
	orgService := organization.NewService(orgRepo)
	userService := user.NewService(userRepo)
	shiftService := shift.NewService(db, shiftRepo, userRepo, orgRepo, outboxRepo, clk)
	analyticsService := analytics.NewService(analyticsRepo, rdb, clk, cfg.StatsLocation)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.SecureCookies)
	orgHandler := organization.NewHandler(orgService)
	userHandler := user.NewHandler(userService, zap.L())
	shiftHandler := shift.NewHandler(shiftService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	rbacHandler := rbac.NewHandler(rbacService)

	authMiddleware := middleware.AuthMiddleware(tokens)
	mutations := shift.Mutations{middleware.RateLimitByUser(cfg.RateLimitRPS, cfg.RateLimitBurst)}
	if rdb != nil {
		mutations = append(mutations, middleware.Idempotency(rdb, idempotencyTTL, zap.L()))
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		organization.RegisterRoutes(api, orgHandler, authMiddleware, rbacService)
		user.RegisterRoutes(api, userHandler, authMiddleware, rbacService)
		shift.RegisterRoutes(api, shiftHandler, authMiddleware, rbacService, mutations)
		analytics.RegisterRoutes(api, analyticsHandler, authMiddleware, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}
