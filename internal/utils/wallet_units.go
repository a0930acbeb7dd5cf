package utils

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// ToSatoshis converts a whole-coin wallet amount to satoshis, truncating anything below one
// satoshi. The conversion stays in decimal until the final integer. ok is false when the
// satoshi count does not fit in an int64.
func ToSatoshis(amount decimal.Decimal) (sats btcutil.Amount, ok bool) {
	whole := amount.Shift(8).Truncate(0).BigInt()
	if !whole.IsInt64() {
		return 0, false
	}
	return btcutil.Amount(whole.Int64()), true
}

// FormatWalletAmount renders a wallet amount the way btcutil prints it, e.g. "0.00100000 BTC".
func FormatWalletAmount(amount decimal.Decimal) (string, bool) {
	sats, ok := ToSatoshis(amount)
	if !ok {
		return "", false
	}
	return sats.String(), true
}
