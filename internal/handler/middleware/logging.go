package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"experience-market/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxRequestIDKey = "request_id"

// Logger owns the process slog handler and the request logging middleware.
type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	// JSON in release mode for log shippers, text locally.
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LoggingMiddleware(_ *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	return NewLogger(cfg).Middleware()
}

// Middleware logs one line per request on completion, leveled by status.
func (l *Logger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(ctxRequestIDKey, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}

		if userID, role := requesterIdentity(c); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID), slog.String("role", role))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		l.logger.LogAttrs(context.Background(), level, "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// requesterIdentity pulls the authenticated identity, if any, out of the jwt
// claims set by the auth middleware.
func requesterIdentity(c *gin.Context) (userID, role string) {
	claims, exists := c.Get("jwt_claims")
	if !exists {
		return "", ""
	}
	m, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	userID, _ = m["user_id"].(string)
	role, _ = m["role"].(string)
	return userID, role
}
