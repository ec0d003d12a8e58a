package handler

import (
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves stored profiles
type UserHandler struct {
	accountUC usecase.AccountUsecase
}

func NewUserHandler(accountUC usecase.AccountUsecase) *UserHandler {
	return &UserHandler{accountUC: accountUC}
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.accountUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, repository.MsgUserFetched)
}
