package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestBuildDefaults(t *testing.T) {
	logger, err := Build(Config{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be enabled by default")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug to be disabled by default")
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	if _, err := Build(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := Build(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInitFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Cleanup(func() { _ = Init(Config{Level: "error"}) })

	if err := InitFromEnv(); err != nil {
		t.Fatalf("InitFromEnv: %v", err)
	}
	if !L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level from LOG_LEVEL")
	}
}
