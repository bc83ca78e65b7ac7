package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_conversion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_conversion_app/internal/dto"
	"github.com/SscSPs/currency_conversion_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	transactionDateLayout = "2006-01-02"
	maxPageSize           = 100
)

// conversionHandler handles HTTP requests for rates, conversions and conversion lookups.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	queryService      portssvc.ConversionQuerySvc
}

func newConversionHandler(cs portssvc.ConversionSvcFacade, qs portssvc.ConversionQuerySvc) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		queryService:      qs,
	}
}

// registerConversionRoutes registers the conversion API on rg.
func registerConversionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newConversionHandler(services.Conversion, services.Query)

	rg.GET("/exchange-rate", h.getExchangeRate)
	rg.GET("/convert", h.convert)

	conversions := rg.Group("/conversions")
	{
		conversions.GET("/by-id", h.getConversionByID)
		conversions.GET("/by-date", h.listConversionsByDate)
	}
}

// getExchangeRate godoc
// @Summary Get the live exchange rate
// @Description Returns the current rate from fromCurrency to toCurrency, or null when the provider has no quote for the pair
// @Tags conversions
// @Produce  json
// @Param   fromCurrency query string true "Source currency code" example(USD)
// @Param   toCurrency   query string true "Target currency code" example(EUR)
// @Success 200 {number} number "Exchange rate"
// @Failure 400 {object} map[string]string "Missing or invalid currency"
// @Failure 500 {object} map[string]string "Rate provider failure"
// @Router /exchange-rate [get]
func (h *conversionHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, logger, bindingErrorMessage(err))
		return
	}

	rate, err := h.conversionService.GetExchangeRate(c.Request.Context(), params.FromCurrency, params.ToCurrency)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, rate)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts amount from fromCurrency to toCurrency at the live rate and records the conversion
// @Tags conversions
// @Produce  json
// @Param   amount       query number true "Amount to convert" example(100)
// @Param   fromCurrency query string true "Source currency code" example(USD)
// @Param   toCurrency   query string true "Target currency code" example(BGN)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Missing or invalid input"
// @Failure 500 {object} map[string]string "Rate provider or storage failure"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, logger, bindingErrorMessage(err))
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(params.Amount))
	if err != nil {
		respondBadRequest(c, logger, "Amount must be a valid number.")
		return
	}
	if !domain.AmountInRange(amount) {
		respondWithError(c, logger, apperrors.ErrAmountOutOfRange)
		return
	}

	conversion, err := h.conversionService.Convert(c.Request.Context(), amount, params.FromCurrency, params.ToCurrency)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Conversion completed", slog.String("transaction_id", conversion.TransactionID.String()))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion.Summary()))
}

// getConversionByID godoc
// @Summary Get a conversion
// @Description Looks up a recorded conversion by its transaction ID
// @Tags conversions
// @Produce  json
// @Param   transactionId query string true "Transaction ID" format(uuid)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Missing or malformed transaction ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /conversions/by-id [get]
func (h *conversionHandler) getConversionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConversionByIDParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, logger, bindingErrorMessage(err))
		return
	}

	transactionID, err := uuid.Parse(strings.TrimSpace(params.TransactionID))
	if err != nil {
		respondBadRequest(c, logger, "Invalid parameter: transactionId")
		return
	}

	summary, err := h.queryService.GetConversionByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(*summary))
}

// listConversionsByDate godoc
// @Summary List conversions of a day
// @Description Returns one page of the conversions recorded on the given day, newest first
// @Tags conversions
// @Produce  json
// @Param   transactionDateTime query string  true  "Day (YYYY-MM-DD)" format(date)
// @Param   page                query integer false "Zero-based page number" default(0) minimum(0)
// @Param   size                query integer false "Page size" default(3) minimum(1) maximum(100)
// @Success 200 {object} dto.ConversionPageResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameter, or a future date"
// @Failure 404 {object} map[string]string "No transactions on that day"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /conversions/by-date [get]
func (h *conversionHandler) listConversionsByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConversionsByDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, logger, bindingErrorMessage(err))
		return
	}

	date, err := time.Parse(transactionDateLayout, strings.TrimSpace(params.TransactionDateTime))
	if err != nil {
		respondBadRequest(c, logger, "Invalid parameter: transactionDateTime")
		return
	}
	page, err := strconv.Atoi(strings.TrimSpace(params.Page))
	if err != nil {
		respondBadRequest(c, logger, "Invalid parameter: page")
		return
	}
	size, err := strconv.Atoi(strings.TrimSpace(params.Size))
	if err != nil {
		respondBadRequest(c, logger, "Invalid parameter: size")
		return
	}
	if size > maxPageSize {
		respondWithError(c, logger, apperrors.NewValidationError("size must not exceed "+strconv.Itoa(maxPageSize)))
		return
	}

	conversions, err := h.queryService.ListConversionsByDate(c.Request.Context(), date, page, size)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionPageResponse(*conversions))
}
