package domain

import "github.com/shopspring/decimal"

// LedgerState holds the merchant's two balances and the conversion constants.
// It carries no synchronization of its own: the conversion engine that owns it serializes
// every access. The constants are fixed at construction.
type LedgerState struct {
	bankAccountBalance decimal.Decimal // fiat available for conversion
	walletBalance      decimal.Decimal // accumulated crypto
	conversionRate     decimal.Decimal // fiat -> crypto multiplier
	defaultPercentage  decimal.Decimal // used when a request omits its percentage
}

// NewLedgerState seeds a ledger from configuration.
func NewLedgerState(bankAccountBalance, walletBalance, conversionRate, defaultPercentage decimal.Decimal) LedgerState {
	return LedgerState{
		bankAccountBalance: bankAccountBalance,
		walletBalance:      walletBalance,
		conversionRate:     conversionRate,
		defaultPercentage:  defaultPercentage,
	}
}

func (l *LedgerState) BankAccountBalance() decimal.Decimal { return l.bankAccountBalance }

func (l *LedgerState) SetBankAccountBalance(d decimal.Decimal) { l.bankAccountBalance = d }

func (l *LedgerState) WalletBalance() decimal.Decimal { return l.walletBalance }

func (l *LedgerState) SetWalletBalance(d decimal.Decimal) { l.walletBalance = d }

func (l *LedgerState) ConversionRate() decimal.Decimal { return l.conversionRate }

func (l *LedgerState) DefaultPercentage() decimal.Decimal { return l.defaultPercentage }

// BalanceSnapshot is a point-in-time copy of the ledger.
type BalanceSnapshot struct {
	BankAccountBalance decimal.Decimal `json:"bankAccountBalance"`
	WalletBalance      decimal.Decimal `json:"walletBalance"`
	ConversionRate     decimal.Decimal `json:"conversionRate"`
	DefaultPercentage  decimal.Decimal `json:"defaultPercentage"`
}
