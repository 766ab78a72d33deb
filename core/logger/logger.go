package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Debug() {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	switch cfg.Format {
	case "json":
		config.Encoding = "json"
	case "compact":
		// Single-line console output without color.
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	default:
		// pretty
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	}

	config.Level = zap.NewAtomicLevelAt(level(cfg.Level))
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// level maps a configured level name onto a zap level. trace maps to debug.
func level(name string) zapcore.Level {
	switch name {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithRequestID returns a logger with the request_id field set from the
// Fiber context.
func WithRequestID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("request_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("request_id", str))
	}
	return l
}
