package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	"github.com/SscSPs/merchant_conversion_app/internal/utils"
)

// ConvertRequest is the raw conversion payload. Both fields accept either a JSON string or a
// JSON number; they are kept raw so the amount never passes through float64.
type ConvertRequest struct {
	AmountFiat           json.RawMessage `json:"amountfiat" binding:"required" swaggertype:"string" example:"1000"`
	ConversionPercentage json.RawMessage `json:"conversionpercentage,omitempty" swaggertype:"string" example:"0.05"`
}

// ConversionResponse is the API view of a conversion. All amounts are decimal strings.
type ConversionResponse struct {
	ConversionID                 string    `json:"conversion_id,omitempty"`
	AmountFiat                   string    `json:"amount_fiat"`
	AmountConverted              string    `json:"amount_converted"`
	AmountToWallet               string    `json:"amount_to_wallet"`
	AmountToBankAccount          string    `json:"amount_to_bank_account"`
	ConversionRate               string    `json:"conversion_rate"`
	MerchantConversionPercentage string    `json:"merchant_conversion_percentage"`
	BankAccountBalance           string    `json:"bank_account_balance"`
	WalletBalance                string    `json:"wallet_balance"`
	Preview                      bool      `json:"preview"`
	ConvertedAt                  time.Time `json:"converted_at"`
}

// BalancesResponse is the API view of the ledger. The satoshi fields are omitted when the
// wallet balance is too large to count in satoshis.
type BalancesResponse struct {
	BankAccountBalance          string `json:"bank_account_balance"`
	WalletBalance               string `json:"wallet_balance"`
	WalletBalanceSats           *int64 `json:"wallet_balance_sats,omitempty"`
	WalletBalanceDisplay        string `json:"wallet_balance_display,omitempty"`
	ConversionRate              string `json:"conversion_rate"`
	DefaultConversionPercentage string `json:"default_conversion_percentage"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ConversionID:                 r.ConversionID,
		AmountFiat:                   r.AmountFiat.String(),
		AmountConverted:              r.AmountConverted.String(),
		AmountToWallet:               r.AmountToWallet.String(),
		AmountToBankAccount:          r.AmountToBankAccount.String(),
		ConversionRate:               r.ConversionRate.String(),
		MerchantConversionPercentage: r.MerchantConversionPercentage.String(),
		BankAccountBalance:           r.BankAccountBalanceAfter.String(),
		WalletBalance:                r.WalletBalanceAfter.String(),
		Preview:                      r.Preview,
		ConvertedAt:                  r.ConvertedAt,
	}
}

// ToBalancesResponse converts a domain.BalanceSnapshot to BalancesResponse DTO
func ToBalancesResponse(s *domain.BalanceSnapshot) BalancesResponse {
	resp := BalancesResponse{
		BankAccountBalance:          s.BankAccountBalance.String(),
		WalletBalance:               s.WalletBalance.String(),
		ConversionRate:              s.ConversionRate.String(),
		DefaultConversionPercentage: s.DefaultPercentage.String(),
	}
	if sats, ok := utils.ToSatoshis(s.WalletBalance); ok {
		n := int64(sats)
		resp.WalletBalanceSats = &n
	}
	resp.WalletBalanceDisplay, _ = utils.FormatWalletAmount(s.WalletBalance)
	return resp
}
