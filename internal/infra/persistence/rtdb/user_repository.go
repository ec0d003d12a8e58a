package rtdb

import (
	"context"
	"encoding/json"
	"path"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"
	"plantcare/internal/infra/realtime"

	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store realtime.Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store realtime.Store) repository.UserRepository {
	return &userRepository{
		store: store,
	}
}

// Save writes the full profile under users/<id>; the stored userID is always id.
func (repo *userRepository) Save(ctx context.Context, id string, user *entity.User) error {
	user.ID = id
	if err := repo.store.Set(ctx, userPath(id), fromUserDomain(user)); err != nil {
		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	raw, err := repo.store.Get(ctx, userPath(id))
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err)
	}
	if raw == nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := json.Unmarshal(raw, &userM); err != nil {
		return nil, errors.Wrapf(repository.ErrRecordDecode, "user %s: %v", id, err)
	}
	if userM.UserID == "" {
		userM.UserID = id
	}

	return toUserDomain(&userM), nil
}

func userPath(id string) string {
	return path.Join(constants.UsersPath, id)
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		UserID:      user.ID,
		FullName:    user.Name,
		Email:       user.Email,
		PhoneNumber: user.Phone,
		Address:     user.Address,
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:      userM.UserID,
		Name:    userM.FullName,
		Email:   userM.Email,
		Phone:   userM.PhoneNumber,
		Address: userM.Address,
	}
}
