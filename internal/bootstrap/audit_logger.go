package bootstrap

import (
	"context"
	"time"

	"shift-tracker/internal/shared/contextutil"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// ZapAuditLogger writes audit entries to a dedicated "audit" logger.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	l.logger.Info("audit event", fields...)
}
