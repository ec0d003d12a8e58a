package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
)

// RegisterInput is the raw form of the sign-up screen
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Address         string
	AgreeToTerms    bool
}

// RegisterOutput reports a created account
type RegisterOutput struct {
	User    *entity.User
	Message string
}

// LoginOutput carries the session of a successful sign-in
type LoginOutput struct {
	Session *service.Session
	Message string
}

// CurrentUserOutput is the verified identity with its stored profile, if any
type CurrentUserOutput struct {
	Identity *service.Identity `json:"identity"`
	User     *entity.User      `json:"user,omitempty"`
}

// AccountUsecase defines the authentication and profile use cases
type AccountUsecase interface {
	// Register creates the identity, then stores the profile under its uid
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// ResetPassword asks the provider to mail a reset link and returns the confirmation message
	ResetPassword(ctx context.Context, email string) (string, error)

	// Logout revokes every session of uid
	Logout(ctx context.Context, uid string) (string, error)

	// Authenticate verifies a session token
	Authenticate(ctx context.Context, token string) (*service.Identity, error)

	CurrentUser(ctx context.Context, identity *service.Identity) (*CurrentUserOutput, error)

	GetUser(ctx context.Context, userID string) (*entity.User, error)
}
