package dto

import (
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/SscSPs/currency_conversion_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Query parameters are bound as strings and parsed by the handler so that a
// malformed value and a missing one produce different messages.

// ExchangeRateParams defines the query of GET /api/exchange-rate.
type ExchangeRateParams struct {
	FromCurrency string `form:"fromCurrency" binding:"required,notblank"`
	ToCurrency   string `form:"toCurrency" binding:"required,notblank"`
}

// ConvertParams defines the query of GET /api/convert.
type ConvertParams struct {
	Amount       string `form:"amount" binding:"required,notblank"`
	FromCurrency string `form:"fromCurrency" binding:"required,notblank"`
	ToCurrency   string `form:"toCurrency" binding:"required,notblank"`
}

// ConversionByIDParams defines the query of GET /api/conversions/by-id.
type ConversionByIDParams struct {
	TransactionID string `form:"transactionId" binding:"required,notblank"`
}

// ConversionsByDateParams defines the query of GET /api/conversions/by-date.
type ConversionsByDateParams struct {
	TransactionDateTime string `form:"transactionDateTime" binding:"required,notblank"`
	Page                string `form:"page,default=0"`
	Size                string `form:"size,default=3"`
}

// ConvertedAmount renders as a JSON number with exactly domain.ConvertedAmountScale
// fractional digits, e.g. 180.0000.
type ConvertedAmount decimal.Decimal

func (a ConvertedAmount) MarshalJSON() ([]byte, error) {
	return []byte(utils.FormatFixed(decimal.Decimal(a), domain.ConvertedAmountScale)), nil
}

func (a *ConvertedAmount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = ConvertedAmount(d)
	return nil
}

// ConversionResponse is the public view of a conversion.
type ConversionResponse struct {
	ConvertedAmount ConvertedAmount `json:"convertedAmount" swaggertype:"number" example:"180.0000"`
	TransactionID   uuid.UUID       `json:"transactionId" swaggertype:"string" format:"uuid"`
}

// ConversionPageResponse is one page of conversions made on a given day.
type ConversionPageResponse struct {
	Content       []ConversionResponse `json:"content"`
	Page          int                  `json:"page"`
	Size          int                  `json:"size"`
	TotalElements int64                `json:"totalElements"`
	TotalPages    int                  `json:"totalPages"`
}

func ToConversionResponse(summary domain.ConversionSummary) ConversionResponse {
	return ConversionResponse{
		ConvertedAmount: ConvertedAmount(summary.ConvertedAmount),
		TransactionID:   summary.TransactionID,
	}
}

// ToConversionPageResponse converts a page of summaries, keeping its paging metadata.
func ToConversionPageResponse(page domain.Page[domain.ConversionSummary]) ConversionPageResponse {
	mapped := domain.MapPage(page, ToConversionResponse)
	return ConversionPageResponse{
		Content:       mapped.Items,
		Page:          mapped.PageNumber,
		Size:          mapped.PageSize,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages(),
	}
}
