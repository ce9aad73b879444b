// Package logging builds the zap logger used for diagnostics. The verdict
// itself is never logged; it is printed by package report.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/netcheck/config"
)

// New returns a production-style JSON logger writing to stderr at
// cfg.Level, or at debug when verbose is set. When cfg.File is set the
// same entries are also written to a size-rotated file.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil

	var opts []zap.Option
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zc.EncoderConfig),
			zapcore.AddSync(rotatingFile(cfg)),
			zc.Level,
		)
		opts = append(opts, zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	logger, err := zc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("logging: failed to initialize logger: %w", err)
	}

	return logger, nil
}

// rotatingFile configures lumberjack from cfg.
func rotatingFile(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
