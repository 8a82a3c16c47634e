package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the runtime settings of the catalog service.
type Config struct {
	AppPort          string
	StaticDir        string
	CORSAllowOrigins string
	Database         DatabaseConfig
	RabbitMQ         RabbitMQConfig
}

// DatabaseConfig selects and tunes the relational store.
type DatabaseConfig struct {
	Driver string
	DSN    string
	Debug  bool
	Seed   bool
}

// RabbitMQConfig configures catalog event publishing. An empty URL disables it.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether a broker is configured.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// New returns a Viper instance with the service defaults, reading
// environment variables and an optional config.yaml.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STATIC_DIR", "./web")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "catalog.db")
	v.SetDefault("DB_DEBUG", false)
	v.SetDefault("SEED_DATABASE", true)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("CATALOG_EXCHANGE", "catalog")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv() // Load environment variables
	return v
}

// Load reads the configuration. A missing config file is not an error.
func Load() (Config, error) {
	v := New()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated Viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:          v.GetString("APP_PORT"),
		StaticDir:        v.GetString("STATIC_DIR"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
			DSN:    strings.TrimSpace(v.GetString("DATABASE_DSN")),
			Debug:  v.GetBool("DB_DEBUG"),
			Seed:   v.GetBool("SEED_DATABASE"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      strings.TrimSpace(v.GetString("RABBITMQ_URL")),
			Exchange: v.GetString("CATALOG_EXCHANGE"),
		},
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return cfg, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return cfg, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.RabbitMQ.Enabled() && cfg.RabbitMQ.Exchange == "" {
		return cfg, fmt.Errorf("CATALOG_EXCHANGE is required when RABBITMQ_URL is set")
	}
	return cfg, nil
}
