package services

import (
	"errors"

	"github.com/SscSPs/merchant_conversion_app/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics
var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "merchant_conversions_total",
			Help: "Conversion attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	ledgerBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "merchant_ledger_balance",
			Help: "Ledger balances as of the last committed conversion or balance read",
		},
		[]string{"balance"},
	)
)

const (
	opConvert = "convert"
	opPreview = "preview"
)

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, apperrors.ErrNegativeBalance):
		return "negative_balance"
	default:
		return "error"
	}
}

func recordConversion(operation string, err error) {
	conversionsTotal.WithLabelValues(operation, outcomeLabel(err)).Inc()
}

func recordBalances(bank, wallet decimal.Decimal) {
	ledgerBalance.WithLabelValues("bank").Set(bank.InexactFloat64())
	ledgerBalance.WithLabelValues("wallet").Set(wallet.InexactFloat64())
}
