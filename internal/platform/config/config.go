package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// ShopLocation decides which calendar day an invoice belongs to.
	ShopTimezone string
	ShopLocation *time.Location

	// RateLimit is a ulule/limiter formatted rate, e.g. "600-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// LowStockDefault is the threshold given to products created without one.
	LowStockDefault decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SHOP_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("RATE_LIMIT", "600-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOW_STOCK_DEFAULT", "5")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.ShopTimezone = viper.GetString("SHOP_TIMEZONE")
	loc, err := time.LoadLocation(cfg.ShopTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE %q: %w", cfg.ShopTimezone, err)
	}
	cfg.ShopLocation = loc

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	lowStockStr := viper.GetString("LOW_STOCK_DEFAULT")
	cfg.LowStockDefault, err = decimal.NewFromString(lowStockStr)
	if err != nil || cfg.LowStockDefault.IsNegative() {
		cfg.LowStockDefault = decimal.NewFromInt(5)
		log.Printf("Warning: Invalid value for LOW_STOCK_DEFAULT ('%s'). Defaulting to %s.\n", lowStockStr, cfg.LowStockDefault)
	}

	return cfg, nil
}
