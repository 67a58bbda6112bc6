package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetupDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log level warn, got %q", cfg.LogLevel)
	}
	if cfg.LogOutput != "stderr" {
		t.Fatalf("expected default log output stderr, got %q", cfg.LogOutput)
	}
	if !cfg.ShowBanner {
		t.Fatal("expected banner to default to true")
	}
}

func TestSetupReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "LOG_LEVEL=debug\nSHOW_BANNER=false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.ShowBanner {
		t.Fatal("expected banner to be disabled")
	}
}

func TestSetupEnvironmentOverrides(t *testing.T) {
	t.Setenv("DYFLISSAN_LOG_LEVEL", "error")
	t.Setenv("DYFLISSAN_SHOW_BANNER", "false")

	cfg, err := Setup("")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected log level error, got %q", cfg.LogLevel)
	}
	if cfg.ShowBanner {
		t.Fatal("expected banner to be disabled")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Config{LogLevel: "info", LogOutput: "stderr"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	core := logger.Desugar().Core()
	if !core.Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info to be enabled")
	}
	if core.Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug to be disabled")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(Config{LogLevel: "loud"}); err == nil {
		t.Fatal("expected error")
	}
}
