package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of locally issued session tokens.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Type   string `json:"typ"`
	// Generation is bumped on sign-out; older tokens stop verifying.
	Generation int `json:"gen"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates an id token and a refresh token for a user.
	GenerateTokens(userID, email string, generation int) (idToken string, refreshToken string, err error)

	// GenerateResetToken creates a short-lived password reset token.
	GenerateResetToken(userID, email string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of id tokens.
	GetAccessTokenDuration() time.Duration
}
