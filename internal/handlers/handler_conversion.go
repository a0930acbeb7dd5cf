package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/merchant_conversion_app/internal/core/ports/services"
	"github.com/SscSPs/merchant_conversion_app/internal/dto"
	"github.com/SscSPs/merchant_conversion_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests related to fiat-to-crypto conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers routes related to conversions and balances.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	convert := rg.Group("/convert")
	{
		convert.POST("", h.convert)
		convert.POST("/preview", h.previewConversion)
	}
	rg.GET("/balances", h.getBalances)
}

// convert godoc
// @Summary Convert fiat to crypto
// @Description Moves a percentage of the fiat amount out of the bank balance and credits the converted crypto amount to the wallet
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Fiat amount and optional conversion percentage"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or non-positive amount"
// @Failure 409 {object} ErrorResponse "Wallet balance would become negative"
// @Failure 422 {object} ErrorResponse "Insufficient bank balance"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Unexpected error"
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// previewConversion godoc
// @Summary Preview a conversion
// @Description Computes a conversion against the current balances without changing them
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Fiat amount and optional conversion percentage"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or non-positive amount"
// @Failure 422 {object} ErrorResponse "Insufficient bank balance"
// @Failure 500 {object} ErrorResponse "Unexpected error"
// @Router /convert/preview [post]
func (h *conversionHandler) previewConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	result, err := h.conversionService.PreviewConversion(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

// getBalances godoc
// @Summary Get ledger balances
// @Description Returns the current bank and wallet balances with the fixed conversion constants
// @Tags conversions
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Failure 500 {object} ErrorResponse "Unexpected error"
// @Router /balances [get]
func (h *conversionHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	snapshot, err := h.conversionService.GetBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Debug("Balances retrieved", slog.String("bank_account_balance", snapshot.BankAccountBalance.String()))
	c.JSON(http.StatusOK, dto.ToBalancesResponse(snapshot))
}
