package apperrors

import "errors"

// ErrInvalidInput indicates that the request payload is missing a field, carries an unparsable
// number, or names a conversion percentage outside (0, 1].
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidAmount indicates that the fiat amount is not strictly positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates that the converted portion exceeds the bank account balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNegativeBalance indicates that a conversion would drive the wallet balance below zero.
// It can only happen with a misconfigured (negative) conversion rate.
var ErrNegativeBalance = errors.New("negative balance")

// ErrUnexpected is the catch-all kind for failures that are not business-rule violations.
var ErrUnexpected = errors.New("unexpected error")

// IsBusinessRule reports whether err is one of the client-facing conversion failures.
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrNegativeBalance)
}
