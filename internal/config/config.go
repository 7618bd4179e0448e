package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings of both the API server and the back-office client.
// Every key can be overridden by an environment variable of the same name.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	RabbitMQURL    string
	CORSOrigins    string
	AccessLog      bool

	APIURL         string
	RequestTimeout time.Duration
	FetchTimeout   time.Duration
}

// Load reads configuration from v, which is usually viper's global instance.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		CORSOrigins:    v.GetString("CORS_ORIGINS"),
		AccessLog:      v.GetBool("ACCESS_LOG"),
		APIURL:         strings.TrimRight(v.GetString("API_URL"), "/"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		FetchTimeout:   v.GetDuration("FETCH_TIMEOUT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":9090")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:backoffice.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("ACCESS_LOG", true)
	v.SetDefault("API_URL", "http://localhost:9090/api")
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("FETCH_TIMEOUT", 15*time.Second)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid DATABASE_DRIVER: %s (must be sqlite or postgres)", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	return nil
}
