package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_conversion_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// QueryService answers lookups over persisted conversions.
type QueryService struct {
	BaseService
	conversionRepo portsrepo.ConversionReader
	location       *time.Location
	now            func() time.Time
}

// QueryServiceOption configures optional QueryService dependencies
type QueryServiceOption func(*QueryService)

// WithLocation sets the time zone that defines day boundaries and "today"
func WithLocation(loc *time.Location) QueryServiceOption {
	return func(s *QueryService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithQueryClock overrides the time source used to decide what "today" is
func WithQueryClock(now func() time.Time) QueryServiceOption {
	return func(s *QueryService) {
		s.now = now
	}
}

// NewQueryService creates a new QueryService. Days are UTC unless WithLocation is given.
func NewQueryService(conversionRepo portsrepo.ConversionReader, options ...QueryServiceOption) *QueryService {
	svc := &QueryService{
		conversionRepo: conversionRepo,
		location:       time.UTC,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// GetConversionByTransactionID returns the public projection of the conversion with the given ID.
func (s *QueryService) GetConversionByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.ConversionSummary, error) {
	s.LogInfo(ctx, "Fetching conversion by transaction ID", slog.String("transaction_id", transactionID.String()))

	conversion, err := s.conversionRepo.FindConversionByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch conversion", slog.String("transaction_id", transactionID.String()))
		return nil, apperrors.NewPersistenceError("failed to fetch conversion", err)
	}
	if conversion == nil {
		s.LogWarn(ctx, "Transaction not found", slog.String("transaction_id", transactionID.String()))
		return nil, apperrors.NewNotFoundError("Transaction not found for the given ID")
	}

	summary := conversion.Summary()
	return &summary, nil
}

// ListConversionsByDate returns one zero-based page of the conversions made on date, newest first.
// Only the calendar day of date (its year, month and day fields) matters; the day
// boundaries are taken in the service location.
func (s *QueryService) ListConversionsByDate(ctx context.Context, date time.Time, page, size int) (*domain.Page[domain.ConversionSummary], error) {
	if page < 0 {
		return nil, apperrors.NewValidationError("page must not be negative")
	}
	if size < 1 {
		return nil, apperrors.NewValidationError("size must be greater than 0")
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	day := startOfDay.Format(dateLayout)
	s.LogInfo(ctx, "Fetching conversions by transaction date",
		slog.String("date", day), slog.Int("page", page), slog.Int("size", size))

	if startOfDay.After(s.today()) {
		s.LogWarn(ctx, "Transaction date is in the future", slog.String("date", day))
		return nil, apperrors.ErrFutureDate
	}

	endOfDay := startOfDay.AddDate(0, 0, 1)
	conversions, err := s.conversionRepo.FindConversionsByDateRange(ctx, startOfDay, endOfDay, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch conversions by date", slog.String("date", day))
		return nil, apperrors.NewPersistenceError("failed to fetch conversions", err)
	}
	if conversions == nil || !conversions.HasContent() {
		s.LogWarn(ctx, "No transactions found for date", slog.String("date", day))
		return nil, apperrors.NewNotFoundError("No transactions found for the given date")
	}

	summaries := domain.MapPage(*conversions, domain.ConversionTransaction.Summary)
	return &summaries, nil
}

// today returns midnight of the current day in the service location.
func (s *QueryService) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

var _ portssvc.ConversionQuerySvc = (*QueryService)(nil)
