package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAMP_MODE", "")
	t.Setenv("RAMP_LOG_LEVEL", "")
	t.Setenv("RAMP_LOG_FILE", "")
	t.Setenv("RAMP_LOG_STDOUT", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "PROD" || cfg.Dev() {
		t.Errorf("Mode = %q, want PROD", cfg.Mode)
	}
	if cfg.LogLevel != 2 || cfg.LogFile != "" || cfg.LogStdout {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadDevReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("RAMP_LOG_LEVEL=4\nRAMP_LOG_STDOUT=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAMP_MODE", "dev")
	// godotenv does not override variables that are already set, so these
	// must be absent rather than empty.
	for _, key := range []string{"RAMP_LOG_LEVEL", "RAMP_LOG_STDOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Dev() || cfg.LogLevel != 4 || !cfg.LogStdout {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadDevMissingEnvFile(t *testing.T) {
	t.Setenv("RAMP_MODE", "DEV")
	t.Setenv("RAMP_LOG_LEVEL", "")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be tolerated, got %v", err)
	}
}

func TestLoadBadLevel(t *testing.T) {
	t.Setenv("RAMP_MODE", "")
	t.Setenv("RAMP_LOG_LEVEL", "loud")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "RAMP_LOG_LEVEL") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestConvertLevel(t *testing.T) {
	tests := []struct {
		in   int
		want zerolog.Level
	}{
		{0, zerolog.FatalLevel},
		{1, zerolog.ErrorLevel},
		{2, zerolog.InfoLevel},
		{3, zerolog.DebugLevel},
		{4, zerolog.TraceLevel},
		{9, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		if got := ConvertLevel(tt.in); got != tt.want {
			t.Errorf("ConvertLevel(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfigureLogger(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	logFile := filepath.Join(t.TempDir(), "ramp.log")
	var console bytes.Buffer
	cfg := &Config{Mode: "PROD", LogLevel: 1, LogFile: logFile}
	closer, err := cfg.ConfigureLogger(&console)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("dropped")
	log.Error().Str("context", "test").Msg("kept")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"message":"kept"`) {
		t.Errorf("log file = %q", out)
	}
	if console.Len() != 0 {
		t.Errorf("console should be unused when a log file is set, got %q", console.String())
	}
}

func TestConfigureLoggerFallback(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var console bytes.Buffer
	cfg := &Config{Mode: "PROD", LogLevel: 2}
	if _, err := cfg.ConfigureLogger(&console); err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("hello")
	if !strings.Contains(console.String(), "hello") {
		t.Errorf("console = %q", console.String())
	}
}
