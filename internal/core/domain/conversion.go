package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConvertedAmountScale is the number of fractional digits kept on converted amounts.
const ConvertedAmountScale = 4

// Bounds on the digits of a conversion amount.
const (
	MaxAmountIntegerDigits  = 20
	MaxAmountFractionDigits = 18
)

// ConversionTransaction is one persisted currency conversion. Records are immutable once saved.
type ConversionTransaction struct {
	TransactionID   uuid.UUID       `json:"transactionId"`   // Public lookup key (random v4)
	OriginalAmount  decimal.Decimal `json:"originalAmount"`  // Positive input amount
	FromCurrency    string          `json:"fromCurrency"`    // Free-form currency code
	ToCurrency      string          `json:"toCurrency"`      // Free-form currency code
	Rate            *float64        `json:"rate"`            // Nil when the provider did not quote the pair
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // round(OriginalAmount * Rate, 4, half-up)
	DateTime        time.Time       `json:"dateTime"`        // Set once at conversion time
}

// ConversionSummary is the public projection of a ConversionTransaction.
type ConversionSummary struct {
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	TransactionID   uuid.UUID       `json:"transactionId"`
}

// Summary projects the transaction onto its public fields.
func (c ConversionTransaction) Summary() ConversionSummary {
	return ConversionSummary{
		ConvertedAmount: c.ConvertedAmount,
		TransactionID:   c.TransactionID,
	}
}

// CalculateConvertedAmount multiplies amount by rate and rounds half away from zero
// to ConvertedAmountScale fractional digits.
func CalculateConvertedAmount(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(rate)).Round(ConvertedAmountScale)
}

// AmountInRange reports whether amount has at most MaxAmountIntegerDigits integer
// digits and MaxAmountFractionDigits fractional digits as written. It inspects
// only the exponent and the coefficient length, never rescaling the value.
func AmountInRange(amount decimal.Decimal) bool {
	exp := int(amount.Exponent())
	if exp < -MaxAmountFractionDigits || exp > MaxAmountIntegerDigits {
		return false
	}
	return amount.NumDigits()+exp <= MaxAmountIntegerDigits
}
