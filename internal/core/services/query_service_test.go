package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/SscSPs/currency_conversion_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockConversionRepository
	service  *services.QueryService
	now      time.Time
}

func (suite *QueryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockConversionRepository)
	suite.now = time.Date(2025, 7, 8, 15, 30, 0, 0, time.UTC)
	suite.service = services.NewQueryService(
		suite.mockRepo,
		services.WithQueryClock(func() time.Time { return suite.now }),
	)
}

func (suite *QueryServiceTestSuite) conversion(amount string, at time.Time) domain.ConversionTransaction {
	rate := 0.85
	original := decimal.RequireFromString(amount)
	return domain.ConversionTransaction{
		TransactionID:   uuid.New(),
		OriginalAmount:  original,
		FromCurrency:    "USD",
		ToCurrency:      "EUR",
		Rate:            &rate,
		ConvertedAmount: domain.CalculateConvertedAmount(original, rate),
		DateTime:        at,
	}
}

func (suite *QueryServiceTestSuite) TestGetConversionByTransactionID_Found() {
	ctx := context.Background()
	stored := suite.conversion("100", suite.now)
	suite.mockRepo.On("FindConversionByTransactionID", ctx, stored.TransactionID).Return(&stored, nil).Once()

	summary, err := suite.service.GetConversionByTransactionID(ctx, stored.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(stored.TransactionID, summary.TransactionID)
	suite.Equal("85.0000", summary.ConvertedAmount.StringFixed(4))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QueryServiceTestSuite) TestGetConversionByTransactionID_NotFound() {
	ctx := context.Background()
	id := uuid.New()
	suite.mockRepo.On("FindConversionByTransactionID", ctx, id).Return(nil, nil).Once()

	summary, err := suite.service.GetConversionByTransactionID(ctx, id)

	suite.Nil(summary)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Transaction not found for the given ID", err.Error())
}

func (suite *QueryServiceTestSuite) TestGetConversionByTransactionID_StoreFailure() {
	ctx := context.Background()
	id := uuid.New()
	suite.mockRepo.On("FindConversionByTransactionID", ctx, id).Return(nil, errors.New("pool closed")).Once()

	_, err := suite.service.GetConversionByTransactionID(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_Today() {
	ctx := context.Background()
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	newest := suite.conversion("300", day.Add(14*time.Hour))
	middle := suite.conversion("200", day.Add(12*time.Hour))
	page := &domain.Page[domain.ConversionTransaction]{
		Items:         []domain.ConversionTransaction{newest, middle},
		PageNumber:    0,
		PageSize:      2,
		TotalElements: 3,
	}
	suite.mockRepo.On("FindConversionsByDateRange", ctx, day, day.AddDate(0, 0, 1), 0, 2).Return(page, nil).Once()

	result, err := suite.service.ListConversionsByDate(ctx, day, 0, 2)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 2)
	suite.Equal(newest.TransactionID, result.Items[0].TransactionID)
	suite.Equal(middle.TransactionID, result.Items[1].TransactionID)
	suite.Equal("255.0000", result.Items[0].ConvertedAmount.StringFixed(4))
	suite.Equal(0, result.PageNumber)
	suite.Equal(2, result.PageSize)
	suite.Equal(int64(3), result.TotalElements)
	suite.Equal(2, result.TotalPages())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_IgnoresTimeOfDay() {
	ctx := context.Background()
	day := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	page := &domain.Page[domain.ConversionTransaction]{
		Items:         []domain.ConversionTransaction{suite.conversion("1", day.Add(time.Hour))},
		PageSize:      3,
		TotalElements: 1,
	}
	suite.mockRepo.On("FindConversionsByDateRange", ctx, day, day.AddDate(0, 0, 1), 0, 3).Return(page, nil).Once()

	result, err := suite.service.ListConversionsByDate(ctx, day.Add(23*time.Hour+59*time.Minute), 0, 3)

	suite.Require().NoError(err)
	suite.Len(result.Items, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_UsesLocationForDayBoundaries() {
	ctx := context.Background()
	sofia, err := time.LoadLocation("Europe/Sofia")
	suite.Require().NoError(err)
	svc := services.NewQueryService(
		suite.mockRepo,
		services.WithLocation(sofia),
		services.WithQueryClock(func() time.Time { return suite.now }),
	)

	start := time.Date(2025, 7, 8, 0, 0, 0, 0, sofia)
	page := &domain.Page[domain.ConversionTransaction]{
		Items:         []domain.ConversionTransaction{suite.conversion("1", start.Add(time.Hour))},
		PageSize:      3,
		TotalElements: 1,
	}
	suite.mockRepo.On("FindConversionsByDateRange", ctx, start, start.AddDate(0, 0, 1), 0, 3).Return(page, nil).Once()

	_, err = svc.ListConversionsByDate(ctx, time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC), 0, 3)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_FutureDate() {
	ctx := context.Background()
	tomorrow := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	result, err := suite.service.ListConversionsByDate(ctx, tomorrow, 0, 3)

	suite.Nil(result)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrFutureDate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindConversionsByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_EmptyDay() {
	ctx := context.Background()
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	empty := &domain.Page[domain.ConversionTransaction]{PageSize: 3}
	suite.mockRepo.On("FindConversionsByDateRange", ctx, day, day.AddDate(0, 0, 1), 0, 3).Return(empty, nil).Once()

	_, err := suite.service.ListConversionsByDate(ctx, day, 0, 3)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("No transactions found for the given date", err.Error())
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_PageBeyondEnd() {
	ctx := context.Background()
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	beyond := &domain.Page[domain.ConversionTransaction]{PageNumber: 5, PageSize: 3, TotalElements: 3}
	suite.mockRepo.On("FindConversionsByDateRange", ctx, day, day.AddDate(0, 0, 1), 5, 3).Return(beyond, nil).Once()

	_, err := suite.service.ListConversionsByDate(ctx, day, 5, 3)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_StoreFailure() {
	ctx := context.Background()
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("FindConversionsByDateRange", ctx, day, day.AddDate(0, 0, 1), 0, 3).Return(nil, errors.New("timeout")).Once()

	_, err := suite.service.ListConversionsByDate(ctx, day, 0, 3)

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *QueryServiceTestSuite) TestListConversionsByDate_InvalidPaging() {
	ctx := context.Background()
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.ListConversionsByDate(ctx, day, -1, 3)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListConversionsByDate(ctx, day, 0, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "FindConversionsByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestQueryService(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}
