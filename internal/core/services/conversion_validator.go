package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/merchant_conversion_app/internal/apperrors"
	"github.com/SscSPs/merchant_conversion_app/internal/core/domain"
	"github.com/SscSPs/merchant_conversion_app/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	// maxNumberLength and maxExponent bound request numbers so a payload like "1e999999999"
	// cannot make us materialize a billion-digit string.
	maxNumberLength = 64
	maxExponent     = 36
)

var one = decimal.NewFromInt(1)

// ValidateConversionRequest parses the raw payload into a domain.ConversionRequest.
// A missing percentage is replaced by defaultPercentage. The percentage must lie in (0, 1];
// the sign of the amount is left to the engine.
func ValidateConversionRequest(req dto.ConvertRequest, defaultPercentage decimal.Decimal) (domain.ConversionRequest, error) {
	amount, present, err := parseDecimalField(req.AmountFiat)
	if err != nil {
		return domain.ConversionRequest{}, fmt.Errorf("%w: amountfiat %v", apperrors.ErrInvalidInput, err)
	}
	if !present {
		return domain.ConversionRequest{}, fmt.Errorf("%w: amountfiat is required", apperrors.ErrInvalidInput)
	}

	pct, present, err := parseDecimalField(req.ConversionPercentage)
	if err != nil {
		return domain.ConversionRequest{}, fmt.Errorf("%w: conversionpercentage %v", apperrors.ErrInvalidInput, err)
	}
	if !present {
		pct = defaultPercentage
	}
	if !pct.IsPositive() || pct.GreaterThan(one) {
		return domain.ConversionRequest{}, fmt.Errorf("%w: conversionpercentage must be greater than 0 and at most 1, got %s", apperrors.ErrInvalidInput, pct)
	}

	return domain.ConversionRequest{AmountFiat: amount, ConversionPercentage: pct}, nil
}

// parseDecimalField accepts a JSON number or a JSON string holding a number.
// An absent or null field reports present=false.
func parseDecimalField(raw json.RawMessage) (d decimal.Decimal, present bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, false, nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return decimal.Zero, true, fmt.Errorf("is not a valid string: %w", err)
		}
		text = strings.TrimSpace(s)
	}
	if text == "" {
		return decimal.Zero, true, fmt.Errorf("is empty")
	}
	if len(text) > maxNumberLength {
		return decimal.Zero, true, fmt.Errorf("is too long")
	}

	d, err = decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("is not a number: %q", text)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, true, fmt.Errorf("is out of range: %q", text)
	}
	return d, true, nil
}
