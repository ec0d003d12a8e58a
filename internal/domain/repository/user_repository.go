package repository

import (
	"context"

	"plantcare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no profile exists under the id.
var ErrUserNotFound = errors.New("user not found")

const (
	MsgUserSaved   = "Registration Successful"
	MsgUserFetched = "data fetched"
)

// UserRepository defines the operations on user profiles.
type UserRepository interface {
	// Save writes the full profile under users/<id>.
	Save(ctx context.Context, id string, user *entity.User) error

	// FindByID reads one profile once.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
