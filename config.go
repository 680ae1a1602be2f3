package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven configuration for a [Client]. Every
// field maps to an ALLIANT_* environment variable, so a worker can be
// pointed at an instance without code changes.
type Config struct {
	BaseURL          string        `envconfig:"ALLIANT_BASE_URL" required:"true"`
	UserID           string        `envconfig:"ALLIANT_USER_ID"`
	Password         string        `envconfig:"ALLIANT_PASSWORD"`
	SystemLayerKey   string        `envconfig:"ALLIANT_SYSTEM_LAYER" default:"default"`
	ApplicationLayer string        `envconfig:"ALLIANT_APPLICATION_LAYER"`
	MaxRetries       int           `envconfig:"ALLIANT_MAX_RETRIES" default:"3"`
	RetryDelay       time.Duration `envconfig:"ALLIANT_RETRY_DELAY" default:"3s"`
	RetryBackoff     float64       `envconfig:"ALLIANT_RETRY_BACKOFF" default:"2"`
	SettleDelay      time.Duration `envconfig:"ALLIANT_SETTLE_DELAY" default:"1s"`
	RequestTimeout   time.Duration `envconfig:"ALLIANT_REQUEST_TIMEOUT" default:"0"`
}

// ConfigFromEnv reads a [Config] from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewFromConfig creates a [Client] from a [Config]. Additional options are
// applied after the config-derived ones and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configured := []Option{
		WithCredentials(cfg.UserID, cfg.Password),
		WithLayers(cfg.SystemLayerKey, cfg.ApplicationLayer),
		WithMaxRetries(cfg.MaxRetries),
		WithRetryDelay(cfg.RetryDelay),
		WithRetryBackoff(cfg.RetryBackoff),
		WithSettleDelay(cfg.SettleDelay),
		WithRequestTimeout(cfg.RequestTimeout),
	}

	return New(cfg.BaseURL, append(configured, opts...)...)
}
