package middleware

import (
	"strings"

	deliverycontext "plantcare/internal/delivery/context"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies the bearer session token of protected routes.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate rejects the request unless it carries a valid, unrevoked session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token format, must be Bearer token")
		}

		identity, err := m.accountUC.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// GetIdentity returns the identity set by Authenticate.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
