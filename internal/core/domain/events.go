package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionCompletedEvent is published after a conversion has been persisted.
type ConversionCompletedEvent struct {
	TransactionID   uuid.UUID       `json:"transactionId"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	Rate            *float64        `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	DateTime        time.Time       `json:"dateTime"`
}

// NewConversionCompletedEvent builds the event for a saved conversion.
func NewConversionCompletedEvent(c ConversionTransaction) ConversionCompletedEvent {
	return ConversionCompletedEvent{
		TransactionID:   c.TransactionID,
		FromCurrency:    c.FromCurrency,
		ToCurrency:      c.ToCurrency,
		OriginalAmount:  c.OriginalAmount,
		Rate:            c.Rate,
		ConvertedAmount: c.ConvertedAmount,
		DateTime:        c.DateTime,
	}
}
