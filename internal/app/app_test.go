package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "DB_PORT", "ACCESS_TOKEN_TTL", "STATS_TIMEZONE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
			t.Setenv(k, "")
		}

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "5432", cfg.Postgres.Port)
		assert.Equal(t, 12*time.Hour, cfg.AccessTokenTTL)
		assert.Equal(t, time.UTC, cfg.StatsLocation)
		assert.Equal(t, rate.Limit(1), cfg.RateLimitRPS)
		assert.Equal(t, 5, cfg.RateLimitBurst)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_TTL", "30m")
		t.Setenv("STATS_TIMEZONE", "Asia/Kolkata")
		t.Setenv("RATE_LIMIT_RPS", "0.5")
		t.Setenv("RATE_LIMIT_BURST", "2")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
		assert.Equal(t, "Asia/Kolkata", cfg.StatsLocation.String())
		assert.Equal(t, rate.Limit(0.5), cfg.RateLimitRPS)
		assert.Equal(t, 2, cfg.RateLimitBurst)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		t.Setenv("STATS_TIMEZONE", "Mars/Olympus")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STATS_TIMEZONE")
	})

	t.Run("secrets required for the api", func(t *testing.T) {
		assert.Error(t, Config{}.RequireAPISecrets())
		assert.Error(t, Config{JWTSecret: "x"}.RequireAPISecrets())
		assert.NoError(t, Config{JWTSecret: "x", IdPSecret: "y"}.RequireAPISecrets())
		assert.Error(t, Config{}.RequireKafka())
	})
}

func TestRegisterModules(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	router := gin.New()
	cfg := Config{
		JWTSecret:      "secret",
		IdPSecret:      "idp",
		AccessTokenTTL: time.Hour,
		StatsLocation:  time.UTC,
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	}
	require.NoError(t, registerModules(router, cfg, db, nil))

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/auth/session",
		"GET /api/v1/users/me",
		"GET /api/v1/users",
		"GET /api/v1/users/:id/shifts",
		"GET /api/v1/shifts",
		"GET /api/v1/shifts/current",
		"POST /api/v1/shifts/clock-in",
		"POST /api/v1/shifts/:id/clock-out",
		"GET /api/v1/organization",
		"PUT /api/v1/organization/geofence",
		"GET /api/v1/dashboard/stats",
		"GET /api/v1/dashboard/stats/export",
		"GET /api/v1/dashboard/active-staff",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shifts/current", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
