package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// TestNewConfig tests that defaults are populated.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.PythonCommand != DefaultPythonCommand {
		t.Errorf("expected python command %q, got %q", DefaultPythonCommand, cfg.PythonCommand)
	}
	if cfg.PipCommand != DefaultPipCommand {
		t.Errorf("expected pip command %q, got %q", DefaultPipCommand, cfg.PipCommand)
	}
	if cfg.ManifestPath != DefaultManifestPath {
		t.Errorf("expected manifest %q, got %q", DefaultManifestPath, cfg.ManifestPath)
	}
	if cfg.TestScript != DefaultTestScript {
		t.Errorf("expected test script %q, got %q", DefaultTestScript, cfg.TestScript)
	}
	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("expected probe timeout %v, got %v", DefaultProbeTimeout, cfg.ProbeTimeout)
	}
	if cfg.SaveToDB {
		t.Error("expected SaveToDB to default to false")
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid defaults", func(t *testing.T) {
		t.Parallel()

		if err := NewConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty interpreter", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.PythonCommand = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoInterpreter) {
			t.Errorf("expected ErrNoInterpreter, got %v", err)
		}
	})

	t.Run("empty pip without skip-install", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.PipCommand = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoPackageManager) {
			t.Errorf("expected ErrNoPackageManager, got %v", err)
		}
	})

	t.Run("empty pip with skip-install", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.PipCommand = ""
		cfg.SkipInstall = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("non-positive probe timeout", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ProbeTimeout = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidProbeTimeout) {
			t.Errorf("expected ErrInvalidProbeTimeout, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}

// TestEffectiveRedisURL tests the documented REDIS_URL fallback.
func TestEffectiveRedisURL(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if got := cfg.EffectiveRedisURL(); got != DefaultRedisURL {
		t.Errorf("expected default %q, got %q", DefaultRedisURL, got)
	}

	cfg.RedisURL = "redis://cache.internal:6380/1"
	if got := cfg.EffectiveRedisURL(); got != cfg.RedisURL {
		t.Errorf("expected %q, got %q", cfg.RedisURL, got)
	}
}

// TestXDGDirs tests that XDG paths end with the application name.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if !strings.HasSuffix(XDGDataDir(), AppName) {
		t.Errorf("expected data dir to end with %q, got %q", AppName, XDGDataDir())
	}
	if !strings.HasSuffix(XDGConfigDir(), AppName) {
		t.Errorf("expected config dir to end with %q, got %q", AppName, XDGConfigDir())
	}
}

// TestDefaultProbeTimeout guards against accidental unit changes.
func TestDefaultProbeTimeout(t *testing.T) {
	t.Parallel()

	if DefaultProbeTimeout != 5*time.Second {
		t.Errorf("expected 5s probe timeout, got %v", DefaultProbeTimeout)
	}
}
