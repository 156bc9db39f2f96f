package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
)

// New builds a JSON logger for production and a console logger elsewhere.
// cfg.Log.Level overrides the default level of either.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	lg, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return lg.With(zap.String("env", cfg.Env)), nil
}
