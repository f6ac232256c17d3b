// Package config resolves the ramp CLI's environment settings and sets up
// the global logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TimeFormat is the timestamp layout used in log output.
const TimeFormat = "20060102-150405.000"

// Config holds the RAMP_* environment settings.
type Config struct {
	// Mode is DEV or PROD. DEV loads .env, logs to stdout and adds callers.
	Mode string
	// LogLevel ranges from 0 (fatal only) to 4 (trace).
	LogLevel int
	// LogFile, when set, receives a copy of every log line.
	LogFile string
	// LogStdout forces console logging outside DEV mode.
	LogStdout bool
}

// Dev reports whether the CLI runs in DEV mode.
func (c *Config) Dev() bool {
	return c.Mode == "DEV"
}

func getenvOr(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// Load reads the environment. In DEV mode envFile is loaded first; a
// missing file is not an error.
func Load(envFile string) (*Config, error) {
	cfg := &Config{Mode: strings.ToUpper(getenvOr("RAMP_MODE", "PROD"))}
	if cfg.Dev() && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg.LogLevel = 2
	if raw := os.Getenv("RAMP_LOG_LEVEL"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RAMP_LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = level
	}
	cfg.LogFile = os.Getenv("RAMP_LOG_FILE")
	cfg.LogStdout = strings.ToLower(os.Getenv("RAMP_LOG_STDOUT")) == "true"
	return cfg, nil
}

// ConfigureLogger points the global zerolog logger at the configured
// outputs. fallback receives console output when no other writer applies.
// The returned closer releases the log file, if any.
func (c *Config) ConfigureLogger(fallback io.Writer) (io.Closer, error) {
	zerolog.TimeFieldFormat = TimeFormat

	var writers []io.Writer
	if c.Dev() || c.LogStdout {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: TimeFormat})
	}
	var file *os.File
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}
	if len(writers) == 0 && fallback != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: fallback, TimeFormat: TimeFormat, NoColor: true})
	}

	logger := zerolog.New(io.Discard)
	switch len(writers) {
	case 0:
	case 1:
		logger = zerolog.New(writers[0])
	default:
		logger = zerolog.New(zerolog.MultiLevelWriter(writers...))
	}
	ctx := logger.With().Timestamp()
	if c.Dev() {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	zerolog.SetGlobalLevel(ConvertLevel(c.LogLevel))

	if file == nil {
		return nopCloser{}, nil
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConvertLevel maps a RAMP_LOG_LEVEL number to a zerolog level.
func ConvertLevel(level int) zerolog.Level {
	switch level {
	case 0:
		return zerolog.FatalLevel
	case 1:
		return zerolog.ErrorLevel
	case 2:
		return zerolog.InfoLevel
	case 3:
		return zerolog.DebugLevel
	case 4:
		return zerolog.TraceLevel
	default:
		return zerolog.DebugLevel
	}
}
