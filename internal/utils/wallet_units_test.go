package utils_test

import (
	"testing"

	"github.com/SscSPs/merchant_conversion_app/internal/utils"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToSatoshis(t *testing.T) {
	tests := []struct {
		in   string
		want btcutil.Amount
	}{
		{"0", 0},
		{"0.001", 100000},
		{"1", btcutil.SatoshiPerBitcoin},
		{"0.000000019", 1}, // below one satoshi is truncated
		{"21.5", 2150000000},
		{"92233720368.54775807", btcutil.Amount(9223372036854775807)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := utils.ToSatoshis(decimal.RequireFromString(tt.in))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSatoshis_OutOfRange(t *testing.T) {
	for _, in := range []string{"92233720368.54775808", "100000000000000"} {
		t.Run(in, func(t *testing.T) {
			got, ok := utils.ToSatoshis(decimal.RequireFromString(in))
			assert.False(t, ok)
			assert.Zero(t, got)
		})
	}
}

func TestFormatWalletAmount(t *testing.T) {
	got, ok := utils.FormatWalletAmount(decimal.RequireFromString("0.001"))
	assert.True(t, ok)
	assert.Equal(t, "0.00100000 BTC", got)

	got, ok = utils.FormatWalletAmount(decimal.Zero)
	assert.True(t, ok)
	assert.Equal(t, "0.00000000 BTC", got)

	got, ok = utils.FormatWalletAmount(decimal.RequireFromString("1e14"))
	assert.False(t, ok)
	assert.Empty(t, got)
}
