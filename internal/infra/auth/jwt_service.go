// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"appcenar/config"
	"appcenar/internal/domain/entity"
	"appcenar/internal/domain/service"
)

// Default token lifetimes, used when the config leaves them unset.
const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenDuration > 0 {
			accessTTL = cfg.Auth.AccessTokenDuration
		}
		if cfg.Auth.RefreshTokenDuration > 0 {
			refreshTTL = cfg.Auth.RefreshTokenDuration
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given account.
func (s *jwtService) GenerateTokens(account *entity.Account) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(account, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(account, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of an access token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Type != "access" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
// Sessions store this digest so a database leak never exposes live tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(account *entity.Account, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: account.ID,
		Role:      account.Role,
		Name:      account.DisplayName(),
		Email:     account.Email,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
