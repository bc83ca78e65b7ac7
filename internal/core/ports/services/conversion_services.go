package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines live exchange rate lookups
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns the live rate for from->to, or nil when the provider did not quote the pair.
	GetExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error)
}

// ConversionWriterSvc defines the conversion workflow
type ConversionWriterSvc interface {
	// Convert converts amount at the live rate and persists the resulting transaction.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*domain.ConversionTransaction, error)
}

// ConversionSvcFacade combines all conversion engine interfaces
type ConversionSvcFacade interface {
	ExchangeRateReaderSvc
	ConversionWriterSvc
}

// ConversionQuerySvc defines lookups over persisted conversions
type ConversionQuerySvc interface {
	// GetConversionByTransactionID returns the public projection of one conversion.
	GetConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionSummary, error)

	// ListConversionsByDate returns one page of the conversions made on the given day, newest first.
	ListConversionsByDate(ctx context.Context, date time.Time, page, size int) (*domain.Page[domain.ConversionSummary], error)
}
