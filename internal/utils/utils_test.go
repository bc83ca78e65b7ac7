package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "180.0000", FormatFixed(decimal.NewFromInt(180), 4))
	assert.Equal(t, "0.1235", FormatFixed(decimal.RequireFromString("0.12345"), 4))
	assert.Equal(t, "-0.1235", FormatFixed(decimal.RequireFromString("-0.12345"), 4))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("client-42", "secret", time.Minute, "currency-conversion")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")

	require.NoError(t, err)
	assert.Equal(t, "client-42", claims.Subject)
	assert.Equal(t, "currency-conversion", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("client-42", "secret", time.Minute, "")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other")

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("client-42", "secret", -time.Minute, "")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
