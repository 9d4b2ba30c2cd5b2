package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/salon-agenda/internal/config"
)

// New builds the process logger. Production gets JSON at info, everything
// else the colored development encoder at debug. LOG_LEVEL overrides both.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config

	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
