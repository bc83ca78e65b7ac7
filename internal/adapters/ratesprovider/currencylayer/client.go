// Package currencylayer fetches live exchange rates from the CurrencyLayer HTTP API.
package currencylayer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/SscSPs/currency_conversion_app/internal/core/ports"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	DefaultBaseURL = "http://api.currencylayer.com"
	DefaultTimeout = 10 * time.Second

	livePath = "/live"
)

type Config struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// liveResponse mirrors the body of GET /live.
type liveResponse struct {
	Success bool               `json:"success"`
	Source  string             `json:"source"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   *errorBody         `json:"error"`
}

type errorBody struct {
	Code int    `json:"code"`
	Info string `json:"info"`
}

// Client is a ports.RateProvider backed by CurrencyLayer.
type Client struct {
	rest *resty.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("access_key", cfg.AccessKey)

	return &Client{rest: rest}
}

// GetRate asks for the fromCurrency->toCurrency quote. A nil rate with a nil
// error means the provider answered but did not quote the pair.
func (c *Client) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*float64, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"source":     fromCurrency,
			"currencies": toCurrency,
			"format":     "1",
		}).
		Get(livePath)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to call rate provider", err)
	}
	if !resp.IsSuccess() {
		return nil, apperrors.NewTransportError(fmt.Sprintf("unsuccessful rate retrieval, status: %d", resp.StatusCode()), nil)
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, apperrors.NewTransportError("rate provider returned an empty body", nil)
	}

	var live liveResponse
	if err := json.Unmarshal(body, &live); err != nil {
		return nil, apperrors.NewTransportError("failed to decode rate provider response", err)
	}

	if !live.Success {
		if live.Error == nil {
			return nil, &apperrors.ProviderError{Info: "request was not successful"}
		}
		return nil, &apperrors.ProviderError{Code: live.Error.Code, Info: live.Error.Info}
	}

	rate, ok := live.Quotes[fromCurrency+toCurrency]
	if !ok {
		return nil, nil
	}
	return &rate, nil
}

var _ ports.RateProvider = (*Client)(nil)
