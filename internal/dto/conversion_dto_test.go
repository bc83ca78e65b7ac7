package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/currency_conversion_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertedAmount_KeepsFourDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"180", "180.0000"},
		{"0.1235", "0.1235"},
		{"12.5", "12.5000"},
		{"-3.14159", "-3.1416"},
	}
	for _, tt := range tests {
		out, err := json.Marshal(ConvertedAmount(decimal.RequireFromString(tt.in)))
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out), tt.in)
	}
}

func TestConvertedAmount_Unmarshal(t *testing.T) {
	var a ConvertedAmount
	require.NoError(t, json.Unmarshal([]byte("180.0000"), &a))
	assert.True(t, decimal.Decimal(a).Equal(decimal.NewFromInt(180)))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
}

func TestToConversionPageResponse(t *testing.T) {
	id := uuid.New()
	page := domain.Page[domain.ConversionSummary]{
		Items:         []domain.ConversionSummary{{ConvertedAmount: decimal.NewFromInt(7), TransactionID: id}},
		PageNumber:    2,
		PageSize:      3,
		TotalElements: 7,
	}

	resp := ToConversionPageResponse(page)

	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.Size)
	assert.Equal(t, int64(7), resp.TotalElements)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, id, resp.Content[0].TransactionID)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"convertedAmount":7.0000,"transactionId":"`+id.String()+`"}],"page":2,"size":3,"totalElements":7,"totalPages":3}`, string(out))
}

func TestToConversionPageResponse_EmptyContentIsArray(t *testing.T) {
	resp := ToConversionPageResponse(domain.Page[domain.ConversionSummary]{PageSize: 3})

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"content":[]`)
}
