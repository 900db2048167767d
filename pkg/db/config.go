package db

import (
	"github.com/kelseyhightower/envconfig"
)

type PostgresConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

// Enabled reports whether a database host was configured.
func (c PostgresConfig) Enabled() bool {
	return c.Host != ""
}

// LoadPostgresConfig reads DB_* variables from the environment.
func LoadPostgresConfig() (PostgresConfig, error) {
	var cfg PostgresConfig
	if err := envconfig.Process("DB", &cfg); err != nil {
		return PostgresConfig{}, err
	}
	return cfg, nil
}
