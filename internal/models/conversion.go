package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Conversion is one row of the conversions table.
type Conversion struct {
	ID              int64           `json:"id"`              // Surrogate key (BIGSERIAL), never exposed through the API
	TransactionID   uuid.UUID       `json:"transactionId"`   // Unique
	OriginalAmount  decimal.Decimal `json:"originalAmount"`  // NUMERIC(38,10)
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Rate            *float64        `json:"rate"`            // Nullable
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // NUMERIC(38,4)
	DateTime        time.Time       `json:"dateTime"`
}
