package currencylayer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/adapters/ratesprovider/currencylayer"
	"github.com/SscSPs/currency_conversion_app/internal/apperrors"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server    *httptest.Server
	lastQuery url.Values
	lastPath  string
	status    int
	body      string
	client    *currencylayer.Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.status = http.StatusOK
	suite.body = ""
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.lastPath = r.URL.Path
		suite.lastQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(suite.status)
		_, _ = w.Write([]byte(suite.body))
	}))
	suite.client = currencylayer.NewClient(currencylayer.Config{
		BaseURL:   suite.server.URL,
		AccessKey: "test-key",
		Timeout:   2 * time.Second,
	})
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) TestGetRate_Success() {
	suite.body = `{"success":true,"source":"USD","quotes":{"USDEUR":0.85}}`

	rate, err := suite.client.GetRate(context.Background(), "USD", "EUR")

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal(0.85, *rate)
	suite.Equal("/live", suite.lastPath)
	suite.Equal("test-key", suite.lastQuery.Get("access_key"))
	suite.Equal("USD", suite.lastQuery.Get("source"))
	suite.Equal("EUR", suite.lastQuery.Get("currencies"))
	suite.Equal("1", suite.lastQuery.Get("format"))
}

func (suite *ClientTestSuite) TestGetRate_PairNotQuoted() {
	suite.body = `{"success":true,"source":"USD","quotes":{"USDGBP":0.76}}`

	rate, err := suite.client.GetRate(context.Background(), "USD", "EUR")

	suite.NoError(err)
	suite.Nil(rate)
}

func (suite *ClientTestSuite) TestGetRate_ProviderReportsFailure() {
	suite.body = `{"success":false,"error":{"code":201,"info":"You have supplied an invalid Source Currency."}}`

	rate, err := suite.client.GetRate(context.Background(), "XXX", "EUR")

	suite.Nil(rate)
	var pErr *apperrors.ProviderError
	suite.Require().ErrorAs(err, &pErr)
	suite.Equal(apperrors.ProviderCodeInvalidSourceCurrency, pErr.Code)
	suite.Equal("You have supplied an invalid Source Currency.", pErr.Info)
}

func (suite *ClientTestSuite) TestGetRate_Non2xxStatus() {
	suite.status = http.StatusServiceUnavailable
	suite.body = `{}`

	_, err := suite.client.GetRate(context.Background(), "USD", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.Contains(err.Error(), "503")
}

func (suite *ClientTestSuite) TestGetRate_EmptyBody() {
	_, err := suite.client.GetRate(context.Background(), "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrTransport)
}

func (suite *ClientTestSuite) TestGetRate_MalformedBody() {
	suite.body = `{"success":`

	_, err := suite.client.GetRate(context.Background(), "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrTransport)
}

func (suite *ClientTestSuite) TestGetRate_Unreachable() {
	client := currencylayer.NewClient(currencylayer.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := client.GetRate(context.Background(), "USD", "EUR")

	suite.ErrorIs(err, apperrors.ErrTransport)
}

func TestCurrencyLayerClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
