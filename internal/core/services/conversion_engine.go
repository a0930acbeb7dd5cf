package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/merchant_conversion_app/internal/apperrors"
	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionEngine owns the LedgerState and is its only writer. Every read-check-write
// sequence over the balances runs under mu.
type ConversionEngine struct {
	mu     sync.Mutex
	ledger domain.LedgerState

	now   func() time.Time
	newID func() string
}

// NewConversionEngine takes ownership of ledger.
func NewConversionEngine(ledger domain.LedgerState) *ConversionEngine {
	return &ConversionEngine{
		ledger: ledger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// DefaultPercentage is fixed for the engine's lifetime, so it is read without the lock.
func (e *ConversionEngine) DefaultPercentage() decimal.Decimal {
	return e.ledger.DefaultPercentage()
}

// Execute applies a conversion. Either every check passes and both balances move, or an
// error is returned and the ledger is untouched.
func (e *ConversionEngine) Execute(req domain.ConversionRequest) (*domain.ConversionResult, error) {
	return e.run(req, true)
}

// Simulate evaluates a conversion against the current balances without committing it.
func (e *ConversionEngine) Simulate(req domain.ConversionRequest) (*domain.ConversionResult, error) {
	return e.run(req, false)
}

// Snapshot returns a consistent copy of the ledger.
func (e *ConversionEngine) Snapshot() domain.BalanceSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	recordBalances(e.ledger.BankAccountBalance(), e.ledger.WalletBalance())
	return domain.BalanceSnapshot{
		BankAccountBalance: e.ledger.BankAccountBalance(),
		WalletBalance:      e.ledger.WalletBalance(),
		ConversionRate:     e.ledger.ConversionRate(),
		DefaultPercentage:  e.ledger.DefaultPercentage(),
	}
}

func (e *ConversionEngine) run(req domain.ConversionRequest, commit bool) (*domain.ConversionResult, error) {
	amountFiat := req.AmountFiat
	pct := req.ConversionPercentage

	if !amountFiat.IsPositive() {
		return nil, fmt.Errorf("%w: amountfiat must be greater than 0, got %s", apperrors.ErrInvalidAmount, amountFiat)
	}

	amountToConvert := amountFiat.Mul(pct)
	rate := e.ledger.ConversionRate()

	e.mu.Lock()
	defer e.mu.Unlock()

	bank := e.ledger.BankAccountBalance()
	if amountToConvert.GreaterThan(bank) {
		return nil, fmt.Errorf("%w: conversion of %s exceeds bank account balance of %s", apperrors.ErrInsufficientFunds, amountToConvert, bank)
	}

	amountToWallet := amountToConvert.Mul(rate)
	walletAfter := e.ledger.WalletBalance().Add(amountToWallet)
	if walletAfter.IsNegative() {
		return nil, fmt.Errorf("%w: wallet balance would become %s", apperrors.ErrNegativeBalance, walletAfter)
	}

	amountToBankAccount := amountFiat.Sub(amountToConvert)
	bankAfter := bank.Sub(amountToConvert)

	result := &domain.ConversionResult{
		AmountFiat:                   amountFiat,
		AmountConverted:              amountToConvert,
		AmountToWallet:               amountToWallet,
		AmountToBankAccount:          amountToBankAccount,
		ConversionRate:               rate,
		MerchantConversionPercentage: pct,
		BankAccountBalanceAfter:      bankAfter,
		WalletBalanceAfter:           walletAfter,
		Preview:                      !commit,
		ConvertedAt:                  e.now().UTC(),
	}
	if !commit {
		return result, nil
	}

	e.ledger.SetBankAccountBalance(bankAfter)
	e.ledger.SetWalletBalance(walletAfter)
	// gauges are set under mu so they never go back to an older balance
	recordBalances(bankAfter, walletAfter)
	result.ConversionID = e.newID()
	return result, nil
}
