// Package config provides configuration loading from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// Tool output defaults
const (
	DefaultJQMaxResultsValue = 1000
	DefaultStatusWorkers     = 4
)

// Config holds all configuration for the MCP server and CLI.
type Config struct {
	APIToken          string        `env:"TOGGL_API_TOKEN"`                                  // required by NewClient
	WorkspaceID       int64         `env:"TOGGL_WORKSPACE_ID" validate:"gte=0"`              // default 0 (none)
	BaseURL           string        `env:"TOGGL_BASE_URL" validate:"required,url"`           // default "https://api.track.toggl.com"
	UserAgent         string        `env:"TOGGL_USER_AGENT" validate:"required"`             // default "toggl-mcp"
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT_MS" validate:"gte=0"`          // default 30000ms (30s)
	HTTPAddr          string        `env:"MCP_HTTP_ADDR" validate:"omitempty,hostname_port"` // default "" (stdio only)

	StatusWorkers       int `env:"STATUS_WORKERS" validate:"gte=1,lte=32"`  // default 4
	DefaultJQMaxResults int `env:"DEFAULT_JQ_MAX_RESULTS" validate:"gte=0"` // default 1000

	// Logging configuration
	LogLevel      string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"` // default "info"
	LogFormat     string `env:"LOG_FORMAT" validate:"oneof=text json"`                    // default "text"
	LogFile       string `env:"LOG_FILE"`                                                 // default "" (stderr only)
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" validate:"gte=1"`                         // default 10
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" validate:"gte=0"`                         // default 5
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" validate:"gte=0"`                        // default 28
	LogCompress   bool   `env:"LOG_COMPRESS"`                                             // default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		APIToken:          strings.TrimSpace(os.Getenv("TOGGL_API_TOKEN")),
		WorkspaceID:       getEnvInt64("TOGGL_WORKSPACE_ID", 0),
		BaseURL:           getEnvString("TOGGL_BASE_URL", client.DefaultBaseURL),
		UserAgent:         getEnvString("TOGGL_USER_AGENT", "toggl-mcp"),
		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 30000),
		HTTPAddr:          getEnvString("MCP_HTTP_ADDR", ""),

		StatusWorkers:       getEnvInt("STATUS_WORKERS", DefaultStatusWorkers),
		DefaultJQMaxResults: getEnvInt("DEFAULT_JQ_MAX_RESULTS", DefaultJQMaxResultsValue),

		LogLevel:      strings.ToLower(getEnvString("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnvString("LOG_FORMAT", "text")),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

var validate = newValidator()

// newValidator reports fields by their environment variable name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks value ranges. The API token is checked by NewClient.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" "+validationMessage(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a URL"
	case "hostname_port":
		return "must be host:port"
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

// ClientOptions converts the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	return []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithTimeout(c.HTTPClientTimeout),
		client.WithWorkspaceID(c.WorkspaceID),
		client.WithUserAgent(c.UserAgent),
	}
}

// NewClient builds a Toggl client from the configuration.
func (c *Config) NewClient(extra ...client.Option) (*client.Client, error) {
	return client.New(c.APIToken, append(c.ClientOptions(), extra...)...)
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
