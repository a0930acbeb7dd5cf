package services

import (
	"context"

	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	"github.com/SscSPs/merchant_conversion_app/internal/dto"
)

// ConversionWriterSvc defines the operation that moves value between the ledger balances.
type ConversionWriterSvc interface {
	// Convert validates req and atomically applies the conversion to the ledger.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)
}

// ConversionReaderSvc defines read-only operations over the ledger.
type ConversionReaderSvc interface {
	// PreviewConversion evaluates req against the current balances without committing.
	PreviewConversion(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)

	// GetBalances returns a consistent snapshot of the ledger.
	GetBalances(ctx context.Context) (*domain.BalanceSnapshot, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionWriterSvc
	ConversionReaderSvc
}
