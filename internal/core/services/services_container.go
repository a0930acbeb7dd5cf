package services

import (
	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	portssvc "github.com/SscSPs/merchant_conversion_app/internal/core/ports/services"
	"github.com/SscSPs/merchant_conversion_app/internal/platform/config"
)

// NewServiceContainer seeds the ledger from configuration and wires the services around it.
func NewServiceContainer(cfg *config.Config) *portssvc.ServiceContainer {
	ledger := domain.NewLedgerState(
		cfg.InitialBankBalance,
		cfg.InitialWalletBalance,
		cfg.ConversionRate,
		cfg.DefaultPercentage,
	)

	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(NewConversionEngine(ledger)),
	}
}

// Helper to check interface implementations at compile time
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)
