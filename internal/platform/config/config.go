package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BaseCurrency is the domestic currency every quote pivots on.
	BaseCurrency string
	// WholesaleThreshold is the default minimum foreign amount for the
	// wholesale tier, used when neither a branch override nor the global
	// record carries one.
	WholesaleThreshold decimal.Decimal

	// Redis cache for assembled rate snapshots.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RatesCacheTTL time.Duration

	// GeoIPTimeout bounds each external geolocation provider attempt.
	GeoIPTimeout time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "UAH")
	viper.SetDefault("DEFAULT_WHOLESALE_THRESHOLD", "1000")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATES_CACHE_TTL", "30s")
	viper.SetDefault("GEOIP_TIMEOUT", "3s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")

	thresholdStr := viper.GetString("DEFAULT_WHOLESALE_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil || !threshold.IsPositive() {
		threshold = decimal.NewFromInt(1000)
		log.Printf("Warning: Invalid value for DEFAULT_WHOLESALE_THRESHOLD ('%s'). Defaulting to %s.\n", thresholdStr, threshold.String())
	}
	cfg.WholesaleThreshold = threshold

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cacheTTLStr := viper.GetString("RATES_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for RATES_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.RatesCacheTTL = cacheTTL

	geoTimeoutStr := viper.GetString("GEOIP_TIMEOUT")
	geoTimeout, err := time.ParseDuration(geoTimeoutStr)
	if err != nil {
		geoTimeout = 3 * time.Second
		log.Printf("Warning: Invalid value for GEOIP_TIMEOUT ('%s'). Defaulting to %s.\n", geoTimeoutStr, geoTimeout.String())
	}
	cfg.GeoIPTimeout = geoTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
