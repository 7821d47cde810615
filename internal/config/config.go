package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

const (
	EnvSpaceID     = "REPSONA_SPACE_ID"
	EnvAPIKey      = "REPSONA_API_KEY"
	EnvDomain      = "REPSONA_DOMAIN"
	EnvBaseURL     = "REPSONA_BASE_URL"
	EnvHTTPTimeout = "REPSONA_HTTP_TIMEOUT"
	EnvUserAgent   = "REPSONA_USER_AGENT"
	EnvLogLevel    = "REPSONA_LOG_LEVEL"
	EnvLogFormat   = "REPSONA_LOG_FORMAT"
	EnvValidate    = "REPSONA_VALIDATE_ARGS"

	DefaultDomain    = repsona.DefaultDomain
	DefaultUserAgent = "repsona-mcp/1.0.0"
)

// ErrMissingCredentials is returned when the space id or API key is absent.
var ErrMissingCredentials = errors.New("REPSONA_SPACE_ID and REPSONA_API_KEY environment variables are required")

type Config struct {
	Repsona Repsona `yaml:"repsona"`
	Log     Log     `yaml:"log"`
	Tools   Tools   `yaml:"tools"`
}

type Repsona struct {
	SpaceID     string        `yaml:"space_id"`
	APIKey      string        `yaml:"api_key"`
	Domain      string        `yaml:"domain"`
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Tools struct {
	ValidateArgs bool `yaml:"validate_args"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Repsona: Repsona{
			Domain:    DefaultDomain,
			UserAgent: DefaultUserAgent,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads an optional yaml file, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Repsona.SpaceID, EnvSpaceID)
	setString(&c.Repsona.APIKey, EnvAPIKey)
	setString(&c.Repsona.Domain, EnvDomain)
	setString(&c.Repsona.BaseURL, EnvBaseURL)
	setString(&c.Repsona.UserAgent, EnvUserAgent)
	setString(&c.Log.Level, EnvLogLevel)
	setString(&c.Log.Format, EnvLogFormat)

	if v := strings.TrimSpace(os.Getenv(EnvHTTPTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHTTPTimeout, err)
		}
		c.Repsona.HTTPTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvValidate)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvValidate, err)
		}
		c.Tools.ValidateArgs = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate reports configuration errors that must stop the process.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Repsona.SpaceID) == "" || strings.TrimSpace(c.Repsona.APIKey) == "" {
		return ErrMissingCredentials
	}
	if c.Repsona.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", c.Repsona.HTTPTimeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

// BaseURL returns the API root, either the explicit override or the
// per-space address.
func (c Config) BaseURL() string {
	if u := strings.TrimRight(strings.TrimSpace(c.Repsona.BaseURL), "/"); u != "" {
		return u
	}
	return repsona.BaseURLForSpace(c.Repsona.SpaceID, c.Repsona.Domain)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// NewLogger builds the process logger. Output goes to w, which must not be
// the protocol stream.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
