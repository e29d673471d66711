package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyLockTTL = 30 * time.Second

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func idempotencyCacheKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored 2xx response for a repeated POST carrying the
// same Idempotency-Key, and rejects a duplicate that arrives while the first is
// still in flight. Must run after AuthMiddleware so keys are scoped per user.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := idempotencyCacheKey(c.Request.URL.Path, GetIdentity(c).UserID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(val, &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis down: serve the request without the guarantee.
			log.Warn("idempotency lock unavailable", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(context.WithoutCancel(ctx), lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.body.Bytes()})
		if err != nil {
			return
		}
		if err := rdb.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
			log.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
