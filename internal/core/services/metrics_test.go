package services

import (
	"sync"
	"testing"

	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	promdto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, balance string) float64 {
	t.Helper()
	var m promdto.Metric
	require.NoError(t, ledgerBalance.WithLabelValues(balance).Write(&m))
	return m.GetGauge().GetValue()
}

func TestLedgerGauges_TrackLastCommitUnderConcurrency(t *testing.T) {
	engine := NewConversionEngine(domain.NewLedgerState(
		decimal.NewFromInt(1000000), decimal.Zero, decimal.RequireFromString("0.00002"), decimal.RequireFromString("0.05"),
	))
	req := domain.ConversionRequest{AmountFiat: decimal.NewFromInt(100), ConversionPercentage: decimal.NewFromInt(1)}

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Execute(req)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// read the gauges before Snapshot, which would refresh them
	bank, wallet := gaugeValue(t, "bank"), gaugeValue(t, "wallet")
	assert.Equal(t, 980000.0, bank)
	assert.InDelta(t, 0.4, wallet, 1e-9)

	snap := engine.Snapshot()
	assert.Equal(t, snap.BankAccountBalance.InexactFloat64(), bank)
}

func TestLedgerGauges_IgnoreRejectedAndSimulated(t *testing.T) {
	engine := NewConversionEngine(domain.NewLedgerState(
		decimal.NewFromInt(500), decimal.Zero, decimal.RequireFromString("0.00002"), decimal.RequireFromString("0.05"),
	))
	engine.Snapshot()
	require.Equal(t, 500.0, gaugeValue(t, "bank"))

	_, err := engine.Simulate(domain.ConversionRequest{AmountFiat: decimal.NewFromInt(100), ConversionPercentage: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = engine.Execute(domain.ConversionRequest{AmountFiat: decimal.NewFromInt(600), ConversionPercentage: decimal.NewFromInt(1)})
	require.Error(t, err)

	assert.Equal(t, 500.0, gaugeValue(t, "bank"))
	assert.Equal(t, 0.0, gaugeValue(t, "wallet"))
}
