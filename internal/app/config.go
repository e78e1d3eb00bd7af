package app

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the client.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	APIBaseURL     string        `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`
	APITokenHeader string        `envconfig:"API_TOKEN_HEADER" default:"POS-Token"`
	APITimeout     time.Duration `envconfig:"API_TIMEOUT" default:"30s"`

	OpsAddr          string        `envconfig:"OPS_ADDR" default:"127.0.0.1:9190"`
	OpsReadTimeout   time.Duration `envconfig:"OPS_READ_TIMEOUT" default:"10s"`
	OpsWriteTimeout  time.Duration `envconfig:"OPS_WRITE_TIMEOUT" default:"10s"`
	OpsRequestPerMin int           `envconfig:"OPS_REQUESTS_PER_MINUTE" default:"120"`

	SessionFile string `envconfig:"SESSION_FILE" default:""`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STOCKLANE", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, errors.New("api base url must be provided")
	}
	if strings.TrimSpace(cfg.APITokenHeader) == "" {
		return nil, errors.New("api token header must be provided")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return &cfg, nil
}

// IsProduction returns true when the client runs against a production backend.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
