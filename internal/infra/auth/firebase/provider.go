// Package firebase implements the AuthProvider with Firebase Authentication:
// the Admin SDK for account management and token checks, and the Identity
// Toolkit REST API for password sign-in and reset emails.
package firebase

import (
	"context"
	"log/slog"
	"time"

	"plantcare/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const requestTypePasswordReset = "PASSWORD_RESET"

type provider struct {
	client  *auth.Client
	toolkit *identitytoolkit.Service
	logger  *slog.Logger
}

// NewProvider builds the provider from the shared app and the project's web API key.
func NewProvider(ctx context.Context, app *firebase.App, apiKey string, logger *slog.Logger) (service.AuthProvider, error) {
	if app == nil {
		return nil, errors.New("firebase auth requires an initialized Firebase app")
	}
	if apiKey == "" {
		return nil, errors.New("firebase auth requires firebase.apiKey")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return &provider{
		client:  client,
		toolkit: toolkit,
		logger:  logger,
	}, nil
}

func (p *provider) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError(err, "verify password")
	}

	return &service.Session{
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.LocalId,
		Email:        resp.Email,
		ExpiresIn:    time.Duration(resp.ExpiresIn) * time.Second,
	}, nil
}

func (p *provider) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	record, err := p.client.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		return "", providerError(err, "create user")
	}

	return record.UID, nil
}

func (p *provider) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.toolkit.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: requestTypePasswordReset,
	}).Context(ctx).Do()
	if err != nil {
		return providerError(err, "send password reset")
	}

	return nil
}

func (p *provider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return providerError(err, "revoke refresh tokens")
	}

	return nil
}

// VerifySession checks the ID token signature and that it was issued after the last revocation.
func (p *provider) VerifySession(ctx context.Context, token string) (*service.Identity, error) {
	verified, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, providerError(err, "verify id token")
	}

	email, _ := verified.Claims["email"].(string)

	return &service.Identity{UID: verified.UID, Email: email}, nil
}

// providerError keeps the provider's message as the innermost error text.
// REST failures carry it in googleapi.Error.Message, e.g. "INVALID_PASSWORD".
func providerError(err error, op string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.Wrap(errors.New(apiErr.Message), op)
	}

	return errors.Wrap(err, op)
}
