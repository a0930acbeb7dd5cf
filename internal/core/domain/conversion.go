package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRequest is a validated request: the amount is parsed and the percentage is
// resolved (request value or ledger default) and known to lie in (0, 1].
type ConversionRequest struct {
	AmountFiat           decimal.Decimal
	ConversionPercentage decimal.Decimal
}

// ConversionResult reports every quantity of a conversion. The balances are the ones after
// commit, or the ones a commit would produce when Preview is set.
type ConversionResult struct {
	ConversionID                 string          `json:"conversionID"` // Empty for previews
	AmountFiat                   decimal.Decimal `json:"amountFiat"`
	AmountConverted              decimal.Decimal `json:"amountConverted"` // AmountFiat * percentage
	AmountToWallet               decimal.Decimal `json:"amountToWallet"`
	AmountToBankAccount          decimal.Decimal `json:"amountToBankAccount"` // Retained remainder, not credited back
	ConversionRate               decimal.Decimal `json:"conversionRate"`
	MerchantConversionPercentage decimal.Decimal `json:"merchantConversionPercentage"`
	BankAccountBalanceAfter      decimal.Decimal `json:"bankAccountBalanceAfter"`
	WalletBalanceAfter           decimal.Decimal `json:"walletBalanceAfter"`
	Preview                      bool            `json:"preview"`
	ConvertedAt                  time.Time       `json:"convertedAt"`
}
