package config

import (
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

const (
	CatalogSourceStatic = "static"
	CatalogSourceDB     = "db"
)

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Assistant think-time bounds
	ThinkMin time.Duration
	ThinkMax time.Duration

	SessionTTL    time.Duration
	SweepSchedule string

	CatalogSource   string
	CatalogCacheTTL time.Duration

	// Embedded storefront relayed under /storefront
	StorefrontURL string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = &Config{
			AppName:         GetEnv("APP_NAME", "companion"),
			Port:            GetEnv("PORT", "8080"),
			Env:             GetEnv("APP_ENV", "development"),
			Debug:           GetEnvBool("DEBUG", false),
			ThinkMin:        GetEnvDuration("THINK_MIN", time.Second),
			ThinkMax:        GetEnvDuration("THINK_MAX", 2*time.Second),
			SessionTTL:      GetEnvDuration("SESSION_TTL", 30*time.Minute),
			SweepSchedule:   GetEnv("SESSION_SWEEP_SCHEDULE", "@every 1m"),
			CatalogSource:   GetEnv("CATALOG_SOURCE", CatalogSourceStatic),
			CatalogCacheTTL: GetEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute),
			StorefrontURL:   GetEnv("STOREFRONT_URL", "https://www.kendrascott.com"),
		}
	})
	return AppConfig
}
