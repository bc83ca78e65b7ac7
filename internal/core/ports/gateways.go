package ports

import (
	"context"
)

// RateProvider fetches a live exchange rate for an ordered currency pair.
type RateProvider interface {
	// GetRate returns the quote for from->to. A nil rate with a nil error means the
	// provider answered successfully but did not quote the pair.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error)
}

// EventPublisher publishes domain events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}
