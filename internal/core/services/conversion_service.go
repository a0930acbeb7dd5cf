package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/merchant_conversion_app/internal/apperrors"
	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	portssvc "github.com/SscSPs/merchant_conversion_app/internal/core/ports/services"
	"github.com/SscSPs/merchant_conversion_app/internal/dto"
)

type conversionService struct {
	BaseService
	engine *ConversionEngine
}

// NewConversionService creates the conversion service on top of engine.
func NewConversionService(engine *ConversionEngine) portssvc.ConversionSvcFacade {
	return &conversionService{engine: engine}
}

// Convert validates the request outside the ledger lock, then hands it to the engine.
func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	result, err := s.evaluate(ctx, req, opConvert)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Conversion committed",
		slog.String("conversion_id", result.ConversionID),
		slog.String("amount_fiat", result.AmountFiat.String()),
		slog.String("amount_converted", result.AmountConverted.String()),
		slog.String("amount_to_wallet", result.AmountToWallet.String()),
		slog.String("bank_account_balance", result.BankAccountBalanceAfter.String()),
		slog.String("wallet_balance", result.WalletBalanceAfter.String()),
	)
	return result, nil
}

// PreviewConversion runs the same checks as Convert but leaves the ledger untouched.
func (s *conversionService) PreviewConversion(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	result, err := s.evaluate(ctx, req, opPreview)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Conversion previewed",
		slog.String("amount_fiat", result.AmountFiat.String()),
		slog.String("amount_to_wallet", result.AmountToWallet.String()),
	)
	return result, nil
}

// GetBalances returns the current ledger snapshot.
func (s *conversionService) GetBalances(ctx context.Context) (*domain.BalanceSnapshot, error) {
	snapshot := s.engine.Snapshot()
	return &snapshot, nil
}

func (s *conversionService) evaluate(ctx context.Context, req dto.ConvertRequest, operation string) (*domain.ConversionResult, error) {
	result, err := s.apply(req, operation)
	recordConversion(operation, err)
	if err != nil {
		if apperrors.IsBusinessRule(err) {
			s.LogWarn(ctx, err, "Conversion rejected", slog.String("operation", operation))
		} else {
			s.LogError(ctx, err, "Conversion failed", slog.String("operation", operation))
		}
		return nil, err
	}
	return result, nil
}

func (s *conversionService) apply(req dto.ConvertRequest, operation string) (*domain.ConversionResult, error) {
	validated, err := ValidateConversionRequest(req, s.engine.DefaultPercentage())
	if err != nil {
		return nil, err
	}
	if operation == opPreview {
		return s.engine.Simulate(validated)
	}
	return s.engine.Execute(validated)
}
