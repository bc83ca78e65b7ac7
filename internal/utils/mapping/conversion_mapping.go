package mapping

import (
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/SscSPs/currency_conversion_app/internal/models"
)

// ToModelConversion converts a domain ConversionTransaction to a model Conversion.
// The surrogate ID is left zero; the store assigns it.
func ToModelConversion(d domain.ConversionTransaction) models.Conversion {
	return models.Conversion{
		TransactionID:   d.TransactionID,
		OriginalAmount:  d.OriginalAmount,
		FromCurrency:    d.FromCurrency,
		ToCurrency:      d.ToCurrency,
		Rate:            d.Rate,
		ConvertedAmount: d.ConvertedAmount,
		DateTime:        d.DateTime,
	}
}

// ToDomainConversion converts a model Conversion to a domain ConversionTransaction
func ToDomainConversion(m models.Conversion) domain.ConversionTransaction {
	return domain.ConversionTransaction{
		TransactionID:   m.TransactionID,
		OriginalAmount:  m.OriginalAmount,
		FromCurrency:    m.FromCurrency,
		ToCurrency:      m.ToCurrency,
		Rate:            m.Rate,
		ConvertedAmount: m.ConvertedAmount,
		DateTime:        m.DateTime,
	}
}

// ToDomainConversions converts a slice of model Conversions
func ToDomainConversions(ms []models.Conversion) []domain.ConversionTransaction {
	out := make([]domain.ConversionTransaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainConversion(m)
	}
	return out
}
