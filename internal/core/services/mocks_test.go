package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/SscSPs/currency_conversion_app/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

var _ ports.RateProvider = (*MockRateProvider)(nil)

// --- Mock ConversionRepository ---
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) SaveConversion(ctx context.Context, conversion domain.ConversionTransaction) (*domain.ConversionTransaction, error) {
	args := m.Called(ctx, conversion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(domain.ConversionTransaction) *domain.ConversionTransaction); ok {
		return fn(conversion), args.Error(1)
	}
	return args.Get(0).(*domain.ConversionTransaction), args.Error(1)
}

func (m *MockConversionRepository) FindConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionTransaction), args.Error(1)
}

func (m *MockConversionRepository) FindConversionsByDateRange(ctx context.Context, start, end time.Time, page, size int) (*domain.Page[domain.ConversionTransaction], error) {
	args := m.Called(ctx, start, end, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.ConversionTransaction]), args.Error(1)
}

var _ portsrepo.ConversionRepositoryFacade = (*MockConversionRepository)(nil)

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, key string, event any) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

var _ ports.EventPublisher = (*MockEventPublisher)(nil)

func floatPtr(f float64) *float64 {
	return &f
}

// echoSaved returns the conversion passed to SaveConversion unchanged.
func echoSaved(c domain.ConversionTransaction) *domain.ConversionTransaction {
	return &c
}
