package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/google/uuid"
)

// ConversionReader defines read operations for conversion transactions
type ConversionReader interface {
	// FindConversionByTransactionID retrieves a conversion by its public transaction ID.
	// It returns (nil, nil) when no record matches.
	FindConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionTransaction, error)

	// FindConversionsByDateRange returns the conversions with start <= DateTime < end,
	// newest first, sliced to the zero-based page of the given size.
	// Page and size are used as given.
	FindConversionsByDateRange(ctx context.Context, start, end time.Time, page, size int) (*domain.Page[domain.ConversionTransaction], error)
}

// ConversionWriter defines write operations for conversion transactions
type ConversionWriter interface {
	// SaveConversion appends a new immutable conversion record.
	SaveConversion(ctx context.Context, conversion domain.ConversionTransaction) (*domain.ConversionTransaction, error)
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
