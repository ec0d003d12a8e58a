package handler

import (
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler serves the dashboard's recent activity
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

func NewActivityHandler(activityUC usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// ActivityListResponse is the feed with the dashboard's plant counter
type ActivityListResponse struct {
	Activities []*entity.Activity `json:"activities"`
	PlantCount int                `json:"plantCount"`
}

// ListActivities handles GET /api/v1/activities
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	ctx := c.Request().Context()

	return response.Success(c, http.StatusOK, ActivityListResponse{
		Activities: h.activityUC.List(ctx),
		PlantCount: h.activityUC.PlantCount(ctx),
	}, "")
}

// RemoveActivity handles DELETE /api/v1/activities/:id
func (h *ActivityHandler) RemoveActivity(c echo.Context) error {
	message, err := h.activityUC.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}
