package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("", "warn")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected error enabled at warn level")
	}

	dev, err := NewLogger("dev", "")
	if err != nil {
		t.Fatalf("new dev logger: %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected dev logger to default to debug")
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
