package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/Cheertaboi/bookstore-locale-service/pkg/db"
)

// Config holds the service configuration. Values come from LOCALE_* variables,
// optionally loaded from a .env file first.
type Config struct {
	Stage    string `envconfig:"STAGE" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	StorageDir string `envconfig:"STORAGE_DIR"`

	GeoTimeout      time.Duration `envconfig:"GEO_TIMEOUT" default:"5s"`
	IPAPIBaseURL    string        `envconfig:"IPAPI_BASE_URL" default:"https://ipapi.co"`
	IPInfoBaseURL   string        `envconfig:"IPINFO_BASE_URL" default:"https://ipinfo.io"`
	IPInfoToken     string        `envconfig:"IPINFO_TOKEN"`
	RatesBaseURL    string        `envconfig:"RATES_BASE_URL" default:"https://open.er-api.com"`
	RatesTTL        time.Duration `envconfig:"RATES_TTL" default:"1h"`
	RatesBase       string        `envconfig:"RATES_BASE" default:"USD"`
	PrefetchBases   []string      `envconfig:"PREFETCH_BASES" default:"USD"`
	SessionIdleTTL  time.Duration `envconfig:"SESSION_IDLE_TTL" default:"24h"`
	RateLimitPerSec int           `envconfig:"RATE_LIMIT_PER_SEC" default:"20"`
	RateLimitBurst  int           `envconfig:"RATE_LIMIT_BURST" default:"40"`

	// CIDRs or IPs of reverse proxies allowed to set X-Forwarded-For
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	DefaultShippingCost    float64 `envconfig:"DEFAULT_SHIPPING_COST" default:"9.99"`
	DefaultMinDeliveryDays int     `envconfig:"DEFAULT_MIN_DELIVERY_DAYS" default:"7"`
	DefaultMaxDeliveryDays int     `envconfig:"DEFAULT_MAX_DELIVERY_DAYS" default:"14"`

	Postgres db.PostgresConfig `ignored:"true"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	// a missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("LOCALE", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process LOCALE env")
	}

	pg, err := db.LoadPostgresConfig()
	if err != nil {
		return Config{}, errors.Wrap(err, "process DB env")
	}
	cfg.Postgres = pg

	if cfg.GeoTimeout <= 0 {
		return Config{}, errors.New("LOCALE_GEO_TIMEOUT must be positive")
	}
	if cfg.RatesTTL <= 0 {
		return Config{}, errors.New("LOCALE_RATES_TTL must be positive")
	}
	return cfg, nil
}
