// Package logging configures the process-wide zap logger.
// Until Init is called the logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level (debug, info, warn, error) and the output
// format (console or json).
type Config struct {
	Level  string
	Format string
}

var base = zap.NewNop()

// FromEnv reads LOG_LEVEL and LOG_FORMAT.
func FromEnv() Config {
	return Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// InitFromEnv is Init(FromEnv()).
func InitFromEnv() error {
	return Init(FromEnv())
}

// Init builds the logger. Empty fields default to info and console.
func Init(cfg Config) error {
	logger, err := Build(cfg)
	if err != nil {
		return err
	}
	base = logger
	return nil
}

// Build returns a logger for cfg without installing it.
func Build(cfg Config) (*zap.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = "console"
	}

	var zapCfg zap.Config
	switch format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	atom := zap.NewAtomicLevel()
	if err := atom.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}
	zapCfg.Level = atom
	// stdout carries command output.
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// L returns the current logger.
func L() *zap.Logger {
	return base
}

// Sync flushes buffered entries.
func Sync() {
	_ = base.Sync()
}
