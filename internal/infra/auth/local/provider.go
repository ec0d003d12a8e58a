// Package local implements an in-process email/password identity provider
// that mirrors the error vocabulary of Firebase Authentication.
package local

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minPasswordLength = 6

// Provider error messages, shaped after the Identity Toolkit codes.
var (
	ErrEmailNotFound   = errors.New("EMAIL_NOT_FOUND")
	ErrInvalidPassword = errors.New("INVALID_PASSWORD")
	ErrEmailExists     = errors.New("EMAIL_EXISTS")
	ErrInvalidEmail    = errors.New("INVALID_EMAIL")
	ErrWeakPassword    = errors.New("WEAK_PASSWORD : Password should be at least 6 characters")
	ErrUserNotFound    = errors.New("USER_NOT_FOUND")
	ErrTokenRevoked    = errors.New("TOKEN_REVOKED")
	ErrInvalidToken    = errors.New("INVALID_ID_TOKEN")
)

type account struct {
	uid          string
	email        string
	passwordHash string
	generation   int
}

type provider struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	byUID   map[string]*account
	hasher  service.PasswordHasher
	tokens  service.TokenService
	logger  *slog.Logger
}

// NewProvider returns an AuthProvider keeping accounts in memory.
func NewProvider(hasher service.PasswordHasher, tokens service.TokenService, logger *slog.Logger) service.AuthProvider {
	return &provider{
		byEmail: make(map[string]*account),
		byUID:   make(map[string]*account),
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger,
	}
}

func (p *provider) SignIn(_ context.Context, email, password string) (*service.Session, error) {
	p.mu.RLock()
	acc, ok := p.byEmail[normalizeEmail(email)]
	var generation int
	if ok {
		generation = acc.generation
	}
	p.mu.RUnlock()

	if !ok {
		return nil, errors.WithStack(ErrEmailNotFound)
	}
	if !p.hasher.Check(password, acc.passwordHash) {
		return nil, errors.WithStack(ErrInvalidPassword)
	}

	idToken, refreshToken, err := p.tokens.GenerateTokens(acc.uid, acc.email, generation)
	if err != nil {
		return nil, err
	}

	return &service.Session{
		IDToken:      idToken,
		RefreshToken: refreshToken,
		UserID:       acc.uid,
		Email:        acc.email,
		ExpiresIn:    p.tokens.GetAccessTokenDuration(),
	}, nil
}

func (p *provider) CreateIdentity(_ context.Context, email, password string) (string, error) {
	normalized := normalizeEmail(email)
	if normalized == "" || !strings.Contains(normalized, "@") {
		return "", errors.WithStack(ErrInvalidEmail)
	}
	if len(password) < minPasswordLength {
		return "", errors.WithStack(ErrWeakPassword)
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[normalized]; exists {
		return "", errors.WithStack(ErrEmailExists)
	}

	acc := &account{
		uid:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		email:        strings.TrimSpace(email),
		passwordHash: hash,
	}
	p.byEmail[normalized] = acc
	p.byUID[acc.uid] = acc

	return acc.uid, nil
}

// SendPasswordReset issues a reset token and logs it in place of sending mail.
func (p *provider) SendPasswordReset(_ context.Context, email string) error {
	p.mu.RLock()
	acc, ok := p.byEmail[normalizeEmail(email)]
	p.mu.RUnlock()

	if !ok {
		return errors.WithStack(ErrEmailNotFound)
	}

	token, err := p.tokens.GenerateResetToken(acc.uid, acc.email)
	if err != nil {
		return err
	}

	p.logger.Info("Password reset requested",
		slog.String("uid", acc.uid),
		slog.String("email", acc.email),
		slog.String("reset_token", token),
	)

	return nil
}

// SignOut bumps the account generation so that earlier tokens stop verifying.
func (p *provider) SignOut(_ context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.byUID[uid]
	if !ok {
		return errors.WithStack(ErrUserNotFound)
	}
	acc.generation++

	return nil
}

func (p *provider) VerifySession(_ context.Context, token string) (*service.Identity, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if claims.Type != constants.TokenTypeSession {
		return nil, errors.WithStack(ErrInvalidToken)
	}

	p.mu.RLock()
	acc, ok := p.byUID[claims.UserID]
	var generation int
	if ok {
		generation = acc.generation
	}
	p.mu.RUnlock()

	if !ok {
		return nil, errors.WithStack(ErrUserNotFound)
	}
	if claims.Generation != generation {
		return nil, errors.WithStack(ErrTokenRevoked)
	}

	return &service.Identity{UID: claims.UserID, Email: claims.Email}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
