// Package logging builds the zap loggers used by both binaries.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deptdash/internal/config"
)

// New creates a JSON zap.Logger at the configured level. When cfg.File is set
// output goes there; the dashboard needs this because the terminal belongs to
// the TUI.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	out := []string{"stdout"}
	errOut := []string{"stderr"}
	if cfg.File != "" {
		out = []string{cfg.File}
		errOut = []string{cfg.File}
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			TimeKey:     "ts",
			NameKey:     "logger",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      out,
		ErrorOutputPaths: errOut,
	}
	return zapCfg.Build()
}
