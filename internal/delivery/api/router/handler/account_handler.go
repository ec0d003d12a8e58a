package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/response"
	"plantcare/internal/delivery/api/validator"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves sign-up, sign-in and session endpoints
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body of the sign-up screen.
// Presence rules live in the usecase so the form messages stay exact.
type RegisterRequest struct {
	Name            string `json:"fullName" validate:"max=100"`
	Email           string `json:"email" validate:"max=254"`
	Phone           string `json:"phoneNumber" validate:"max=32"`
	Password        string `json:"password" validate:"max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"max=128"`
	Address         string `json:"address" validate:"max=300"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

// PasswordResetRequest represents the request body for a reset email
type PasswordResetRequest struct {
	Email string `json:"email" validate:"max=254"`
}

// LoginResponse is the session handed to the client
type LoginResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func bindAndValidate(c echo.Context, req any, message string) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError(message)
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.NewValidationError(message).WithDetails(validator.Describe(err))
	}

	return nil
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req, "Invalid registration input"); err != nil {
		return err
	}

	output, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Address:         req.Address,
		AgreeToTerms:    req.AgreeToTerms,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, output.Message)
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req, "Invalid login input"); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLoginResponse(output.Session), output.Message)
}

// ResetPassword handles POST /auth/password-reset
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindAndValidate(c, &req, "Invalid password reset input"); err != nil {
		return err
	}

	message, err := h.accountUC.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// Logout handles POST /auth/logout
func (h *AccountHandler) Logout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	message, err := h.accountUC.Logout(c.Request().Context(), identity.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// Me handles GET /auth/me
func (h *AccountHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	output, err := h.accountUC.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

func newLoginResponse(session *service.Session) *LoginResponse {
	return &LoginResponse{
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
		UserID:       session.UserID,
		Email:        session.Email,
		ExpiresIn:    int64(session.ExpiresIn.Seconds()),
	}
}
