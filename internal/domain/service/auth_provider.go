package service

import (
	"context"
	"time"
)

// Messages reported to the client after a successful auth operation.
const (
	MsgLoginSucceeded    = "Login Successfully"
	MsgRegistered        = "Registered Successfully"
	MsgResetEmailSentFmt = "Reset email sent to %s"
	MsgLogoutSucceeded   = "Logout successful"
)

// Session is what a successful password sign-in hands back to the client.
type Session struct {
	IDToken      string        `json:"idToken"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	UserID       string        `json:"userId"`
	Email        string        `json:"email"`
	ExpiresIn    time.Duration `json:"-"`
}

// Identity is the verified subject of a session token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AuthProvider abstracts the identity backend.
// Errors carry the provider's own message as their innermost cause.
type AuthProvider interface {
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// CreateIdentity registers a new email/password identity and returns its uid.
	CreateIdentity(ctx context.Context, email, password string) (string, error)

	// SendPasswordReset asks the provider to deliver a reset link to email.
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut revokes every session issued to uid so far.
	SignOut(ctx context.Context, uid string) error

	// VerifySession checks a session token and returns its identity.
	VerifySession(ctx context.Context, token string) (*Identity, error)
}
