// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"
)

const (
	refreshTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SessionSecret == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret:     []byte(cfg.Auth.SessionSecret),
		sessionTTL: ttl,
		refreshTTL: refreshTokenTTL,
		resetTTL:   resetTokenTTL,
		now:        time.Now,
	}, nil
}

// GenerateTokens creates a session id token and a refresh token for a user.
func (s *jwtService) GenerateTokens(userID, email string, generation int) (idToken string, refreshToken string, err error) {
	idToken, err = s.generateToken(userID, email, generation, constants.TokenTypeSession, s.sessionTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, email, generation, constants.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return idToken, refreshToken, nil
}

func (s *jwtService) GenerateResetToken(userID, email string) (string, error) {
	return s.generateToken(userID, email, 0, constants.TokenTypeReset, s.resetTTL)
}

// ValidateToken parses a token, checking the signing method, signature and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return claims, nil
}

func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.sessionTTL
}

func (s *jwtService) generateToken(userID, email string, generation int, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID:     userID,
		Email:      email,
		Type:       tokenType,
		Generation: generation,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
