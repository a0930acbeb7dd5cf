package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	// Ledger seed values. They are read once at startup and never persisted.
	InitialBankBalance   decimal.Decimal
	InitialWalletBalance decimal.Decimal
	ConversionRate       decimal.Decimal
	DefaultPercentage    decimal.Decimal

	// RateLimit uses the ulule formatted notation, e.g. "60-M" for 60 requests per minute.
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("INITIAL_BANK_BALANCE", "100000")
	v.SetDefault("INITIAL_WALLET_BALANCE", "0")
	v.SetDefault("CONVERSION_RATE", "0.000020")
	v.SetDefault("DEFAULT_CONVERSION_PERCENTAGE", "0.05")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	logLevelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel)
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if cfg.InitialBankBalance, err = getDecimal(v, "INITIAL_BANK_BALANCE"); err != nil {
		return nil, err
	}
	if cfg.InitialWalletBalance, err = getDecimal(v, "INITIAL_WALLET_BALANCE"); err != nil {
		return nil, err
	}
	if cfg.ConversionRate, err = getDecimal(v, "CONVERSION_RATE"); err != nil {
		return nil, err
	}
	if cfg.DefaultPercentage, err = getDecimal(v, "DEFAULT_CONVERSION_PERCENTAGE"); err != nil {
		return nil, err
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "60-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ledger seed values. Balances and the rate must be non-negative and the
// default percentage must lie in (0, 1].
func (c *Config) Validate() error {
	if c.InitialBankBalance.IsNegative() {
		return fmt.Errorf("INITIAL_BANK_BALANCE must not be negative, got %s", c.InitialBankBalance)
	}
	if c.InitialWalletBalance.IsNegative() {
		return fmt.Errorf("INITIAL_WALLET_BALANCE must not be negative, got %s", c.InitialWalletBalance)
	}
	if c.ConversionRate.IsNegative() {
		return fmt.Errorf("CONVERSION_RATE must not be negative, got %s", c.ConversionRate)
	}
	if !c.DefaultPercentage.IsPositive() || c.DefaultPercentage.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("DEFAULT_CONVERSION_PERCENTAGE must be in (0, 1], got %s", c.DefaultPercentage)
	}
	return nil
}

func getDecimal(v *viper.Viper, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value for %s ('%s'): %w", key, raw, err)
	}
	return d, nil
}
