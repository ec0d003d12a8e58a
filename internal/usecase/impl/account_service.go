package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Validation messages of the account forms.
const (
	MsgFillAllFields       = "Please fill all fields"
	MsgPasswordsMismatch   = "Passwords do not match"
	MsgAgreeToTerms        = "Please agree to terms and conditions"
	MsgEnterCredentials    = "Please enter email and password"
	MsgEnterEmail          = "Please enter email"
	MsgEnterValidEmail     = "Please enter valid email"
	MsgMissingSessionToken = "Missing session token"
)

// registerForm mirrors usecase.RegisterInput with the rules of the sign-up screen.
type registerForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Phone           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	Address         string `validate:"required"`
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	auth     service.AuthProvider
	userRepo repository.UserRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Auth     service.AuthProvider
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		auth:     params.Auth,
		userRepo: params.UserRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the identity first and stores the profile under its uid.
// A failed profile write leaves the identity in place.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	form := registerForm{
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
		Address:         strings.TrimSpace(input.Address),
	}
	if err := srv.validate.Struct(form); err != nil {
		return nil, domainerrors.NewValidationError(MsgFillAllFields)
	}
	if form.Password != form.ConfirmPassword {
		return nil, domainerrors.NewValidationError(MsgPasswordsMismatch)
	}
	if !input.AgreeToTerms {
		return nil, domainerrors.NewValidationError(MsgAgreeToTerms)
	}

	uid, err := srv.auth.CreateIdentity(ctx, form.Email, form.Password)
	if err != nil {
		srv.log(ctx).Warn("Identity creation refused", slog.String("email", form.Email), slog.Any("error", err))

		return nil, domainerrors.NewAuthRequestError(err)
	}
	srv.log(ctx).Debug(service.MsgRegistered, slog.String("user_id", uid))

	user := &entity.User{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	}
	if err := srv.userRepo.Save(ctx, uid, user); err != nil {
		srv.log(ctx).Error("Profile write failed after identity creation",
			slog.String("user_id", uid),
			slog.Any("error", err),
		)

		return nil, mapUserError(err)
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", uid))

	return &usecase.RegisterOutput{User: user, Message: repository.MsgUserSaved}, nil
}

func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.NewValidationError(MsgEnterCredentials)
	}

	session, err := srv.auth.SignIn(ctx, email, password)
	if err != nil {
		srv.log(ctx).Info("Sign-in refused", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.NewAuthRequestError(err)
	}

	return &usecase.LoginOutput{Session: session, Message: service.MsgLoginSucceeded}, nil
}

func (srv *accountService) ResetPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domainerrors.NewValidationError(MsgEnterEmail)
	}
	if err := srv.validate.Var(email, "email"); err != nil {
		return "", domainerrors.NewValidationError(MsgEnterValidEmail)
	}

	if err := srv.auth.SendPasswordReset(ctx, email); err != nil {
		return "", domainerrors.NewAuthRequestError(err)
	}

	return fmt.Sprintf(service.MsgResetEmailSentFmt, email), nil
}

func (srv *accountService) Logout(ctx context.Context, uid string) (string, error) {
	if err := srv.auth.SignOut(ctx, uid); err != nil {
		return "", domainerrors.NewAuthRequestError(err)
	}

	srv.log(ctx).Info("User signed out", slog.String("user_id", uid))

	return service.MsgLogoutSucceeded, nil
}

func (srv *accountService) Authenticate(ctx context.Context, token string) (*service.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WithMessage(MsgMissingSessionToken)
	}

	identity, err := srv.auth.VerifySession(ctx, token)
	if err != nil {
		return nil, domainerrors.NewAuthError(err)
	}

	return identity, nil
}

// CurrentUser pairs the identity with its profile. A missing profile is not an error.
func (srv *accountService) CurrentUser(ctx context.Context, identity *service.Identity) (*usecase.CurrentUserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.UID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return &usecase.CurrentUserOutput{Identity: identity}, nil
	}
	if err != nil {
		return nil, mapUserError(err)
	}

	return &usecase.CurrentUserOutput{Identity: identity, User: user}, nil
}

func (srv *accountService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return user, nil
}

func mapUserError(err error) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrRecordDecode):
		return domainerrors.ErrRecordDecodeFailed.WithDetails(err.Error())
	case errors.As(err, &appErr):
		return appErr
	default:
		return domainerrors.NewPersistenceError(err)
	}
}
