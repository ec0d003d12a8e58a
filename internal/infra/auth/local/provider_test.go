package local

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"plantcare/config"
	"plantcare/internal/errors"
	"plantcare/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestProvider(t *testing.T) *provider {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		SessionSecret: "local_provider_test_secret_value",
		SessionTTL:    time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProvider(auth.NewBcryptHasher(cfg), tokens, logger).(*provider)
}

func TestProvider_RegisterSignInVerify(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	uid, err := p.CreateIdentity(ctx, "Test@Gmail.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	session, err := p.SignIn(ctx, "test@gmail.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uid, session.UserID)
	assert.Equal(t, time.Hour, session.ExpiresIn)

	identity, err := p.VerifySession(ctx, session.IDToken)
	require.NoError(t, err)
	assert.Equal(t, uid, identity.UID)
	assert.Equal(t, "Test@Gmail.com", identity.Email)
}

func TestProvider_ErrorMessages(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	_, err := p.CreateIdentity(ctx, "a@b.co", "123")
	assert.Equal(t, "WEAK_PASSWORD : Password should be at least 6 characters", errors.RootMessage(err))

	_, err = p.CreateIdentity(ctx, "not-an-email", "secret1")
	assert.Equal(t, "INVALID_EMAIL", errors.RootMessage(err))

	_, err = p.CreateIdentity(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	_, err = p.CreateIdentity(ctx, "A@B.co", "secret1")
	assert.Equal(t, "EMAIL_EXISTS", errors.RootMessage(err))

	_, err = p.SignIn(ctx, "missing@b.co", "secret1")
	assert.Equal(t, "EMAIL_NOT_FOUND", errors.RootMessage(err))

	_, err = p.SignIn(ctx, "a@b.co", "wrong-password")
	assert.Equal(t, "INVALID_PASSWORD", errors.RootMessage(err))

	err = p.SendPasswordReset(ctx, "missing@b.co")
	assert.Equal(t, "EMAIL_NOT_FOUND", errors.RootMessage(err))
	assert.NoError(t, p.SendPasswordReset(ctx, "a@b.co"))

	_, err = p.VerifySession(ctx, "garbage")
	assert.Equal(t, "INVALID_ID_TOKEN", errors.RootMessage(err))
}

func TestProvider_SignOutRevokesEarlierSessions(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	uid, err := p.CreateIdentity(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	before, err := p.SignIn(ctx, "a@b.co", "secret1")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(ctx, uid))

	_, err = p.VerifySession(ctx, before.IDToken)
	assert.Equal(t, "TOKEN_REVOKED", errors.RootMessage(err))

	after, err := p.SignIn(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	_, err = p.VerifySession(ctx, after.IDToken)
	assert.NoError(t, err)

	_, err = p.VerifySession(ctx, after.RefreshToken)
	assert.Error(t, err, "refresh tokens are not session tokens")

	assert.Error(t, p.SignOut(ctx, "unknown"))
}
