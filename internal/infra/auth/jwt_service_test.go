package auth

import (
	"testing"

	"appcenar/config"
	"appcenar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	return cfg
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Email: "cliente@example.com",
		Role:  entity.RoleCustomer,
		Name:  "Juan",
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	account := testAccount()

	accessToken, refreshToken, err := jwtService.GenerateTokens(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
	assert.Equal(t, "Juan", claims.Name)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(testAccount())
	assert.NoError(t, err)

	// Refresh tokens are signed with a different secret and must not pass
	// access token validation.
	claims, err := jwtService.ValidateToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("some-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("other-token"))
}
