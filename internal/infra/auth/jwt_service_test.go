package auth

import (
	"testing"
	"time"

	"teka/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Hour, BcryptCost: 4},
	}
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokens.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, time.Hour, tokens.AccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := tokens.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	svc := tokens.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": uuid.NewString(),
		"iss": accessTokenIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(raw)
	assert.Error(t, err)
}
