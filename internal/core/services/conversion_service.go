package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/SscSPs/currency_conversion_app/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_conversion_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts at live provider rates and records every conversion.
type ConversionService struct {
	BaseService
	rateProvider   ports.RateProvider
	conversionRepo portsrepo.ConversionWriter
	publisher      ports.EventPublisher
	now            func() time.Time
	newID          func() uuid.UUID
}

// ConversionServiceOption configures optional ConversionService dependencies
type ConversionServiceOption func(*ConversionService)

// WithEventPublisher publishes a ConversionCompletedEvent after every saved conversion
func WithEventPublisher(publisher ports.EventPublisher) ConversionServiceOption {
	return func(s *ConversionService) {
		s.publisher = publisher
	}
}

// WithClock overrides the time source used for transaction timestamps
func WithClock(now func() time.Time) ConversionServiceOption {
	return func(s *ConversionService) {
		s.now = now
	}
}

// WithIDGenerator overrides the transaction ID generator
func WithIDGenerator(newID func() uuid.UUID) ConversionServiceOption {
	return func(s *ConversionService) {
		s.newID = newID
	}
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateProvider ports.RateProvider, conversionRepo portsrepo.ConversionWriter, options ...ConversionServiceOption) *ConversionService {
	svc := &ConversionService{
		rateProvider:   rateProvider,
		conversionRepo: conversionRepo,
		now:            time.Now,
		newID:          uuid.New,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// GetExchangeRate returns the live rate for fromCurrency->toCurrency.
// A nil rate is passed through when the provider did not quote the pair.
func (s *ConversionService) GetExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error) {
	if err := validateCurrencyCodes(fromCurrency, toCurrency); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Fetching exchange rate", slog.String("from", fromCurrency), slog.String("to", toCurrency))

	rate, err := s.rateProvider.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rate", slog.String("from", fromCurrency), slog.String("to", toCurrency))
		return nil, err
	}
	if rate == nil {
		s.LogWarn(ctx, "Provider did not quote currency pair", slog.String("pair", fromCurrency+toCurrency))
	} else {
		s.LogDebug(ctx, "Exchange rate obtained", slog.Float64("rate", *rate))
	}
	return rate, nil
}

// Convert converts amount from fromCurrency to toCurrency at the live rate,
// persists the conversion and returns the full record.
func (s *ConversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*domain.ConversionTransaction, error) {
	if !amount.IsPositive() {
		s.LogWarn(ctx, "Invalid amount for conversion", slog.String("amount", amount.String()))
		return nil, apperrors.ErrInvalidAmount
	}
	if !domain.AmountInRange(amount) {
		s.LogWarn(ctx, "Amount out of range for conversion", slog.Int("exponent", int(amount.Exponent())))
		return nil, apperrors.ErrAmountOutOfRange
	}

	s.LogInfo(ctx, "Converting amount",
		slog.String("amount", amount.String()),
		slog.String("from", fromCurrency),
		slog.String("to", toCurrency),
	)

	rate, err := s.GetExchangeRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, fmt.Errorf("%w: no quote for %s%s", apperrors.ErrMissingRate, fromCurrency, toCurrency)
	}

	conversion := domain.ConversionTransaction{
		TransactionID:   s.newID(),
		OriginalAmount:  amount,
		FromCurrency:    fromCurrency,
		ToCurrency:      toCurrency,
		Rate:            rate,
		ConvertedAmount: domain.CalculateConvertedAmount(amount, *rate),
		// Postgres keeps microseconds. Rounding up keeps the stamp at or after the call start.
		DateTime: ceilToMicrosecond(s.now()),
	}

	saved, err := s.conversionRepo.SaveConversion(ctx, conversion)
	if err != nil {
		s.LogError(ctx, err, "Failed to save conversion", slog.String("transaction_id", conversion.TransactionID.String()))
		return nil, apperrors.NewPersistenceError("failed to save conversion", err)
	}

	s.LogInfo(ctx, "Conversion transaction saved", slog.String("transaction_id", saved.TransactionID.String()))
	s.publishCompleted(ctx, *saved)

	return saved, nil
}

func (s *ConversionService) publishCompleted(ctx context.Context, conversion domain.ConversionTransaction) {
	if s.publisher == nil {
		return
	}
	event := domain.NewConversionCompletedEvent(conversion)
	if err := s.publisher.Publish(ctx, conversion.TransactionID.String(), event); err != nil {
		// The conversion is already persisted; losing the event must not fail the request.
		s.LogError(ctx, err, "Failed to publish conversion event", slog.String("transaction_id", conversion.TransactionID.String()))
	}
}

func validateCurrencyCodes(fromCurrency, toCurrency string) error {
	if strings.TrimSpace(fromCurrency) == "" {
		return apperrors.NewValidationError("fromCurrency must be present")
	}
	if strings.TrimSpace(toCurrency) == "" {
		return apperrors.NewValidationError("toCurrency must be present")
	}
	return nil
}

var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

func ceilToMicrosecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Microsecond)
	if truncated.Before(t) {
		return truncated.Add(time.Microsecond)
	}
	return truncated
}
