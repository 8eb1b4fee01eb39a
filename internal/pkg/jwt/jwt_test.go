package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour, "realty")

	token, err := svc.GenerateToken(1, "seller")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, "realty", claims.Issuer)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour, "realty").GenerateToken(1, "buyer")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour, "realty").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := New("test-secret", -time.Minute, "realty")

	token, err := svc.GenerateToken(1, "buyer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_WrongIssuer(t *testing.T) {
	token, err := New("test-secret", time.Hour, "other-service").GenerateToken(1, "buyer")
	require.NoError(t, err)

	_, err = New("test-secret", time.Hour, "realty").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	svc := New("test-secret", time.Hour, "realty")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
