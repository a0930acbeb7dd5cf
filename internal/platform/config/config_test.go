package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/merchant_conversion_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setLedgerEnv(t *testing.T, bank, wallet, rate, pct string) {
	t.Helper()
	t.Setenv("INITIAL_BANK_BALANCE", bank)
	t.Setenv("INITIAL_WALLET_BALANCE", wallet)
	t.Setenv("CONVERSION_RATE", rate)
	t.Setenv("DEFAULT_CONVERSION_PERCENTAGE", pct)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	setLedgerEnv(t, "2500.50", "0.25", "0.000020", "0.15")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, decimal.RequireFromString("2500.50").Equal(cfg.InitialBankBalance))
	assert.True(t, decimal.RequireFromString("0.25").Equal(cfg.InitialWalletBalance))
	assert.True(t, decimal.RequireFromString("0.00002").Equal(cfg.ConversionRate))
	assert.True(t, decimal.RequireFromString("0.15").Equal(cfg.DefaultPercentage))
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	setLedgerEnv(t, "100000", "0", "0.000020", "0.05")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_RejectsBadLedgerSeed(t *testing.T) {
	tests := []struct {
		name                    string
		bank, wallet, rate, pct string
	}{
		{"unparsable bank balance", "lots", "0", "0.00002", "0.05"},
		{"negative bank balance", "-1", "0", "0.00002", "0.05"},
		{"negative wallet balance", "100", "-0.1", "0.00002", "0.05"},
		{"negative rate", "100", "0", "-0.00002", "0.05"},
		{"zero default percentage", "100", "0", "0.00002", "0"},
		{"default percentage above one", "100", "0", "0.00002", "1.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setLedgerEnv(t, tt.bank, tt.wallet, tt.rate, tt.pct)
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidate_AcceptsFullPercentage(t *testing.T) {
	cfg := &config.Config{
		InitialBankBalance:   decimal.NewFromInt(10),
		InitialWalletBalance: decimal.Zero,
		ConversionRate:       decimal.Zero,
		DefaultPercentage:    decimal.NewFromInt(1),
	}
	assert.NoError(t, cfg.Validate())
}
