package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/usecase"
)

type activityService struct {
	feed     *ActivityFeed
	products usecase.ProductUsecase
	logger   *slog.Logger
}

func NewActivityService(feed *ActivityFeed, products usecase.ProductUsecase, logger *slog.Logger) usecase.ActivityUsecase {
	return &activityService{
		feed:     feed,
		products: products,
		logger:   logger,
	}
}

func (srv *activityService) List(_ context.Context) []*entity.Activity {
	return srv.feed.List()
}

// Remove deletes the referenced plant before dropping a plant entry.
// The entry stays when the delete fails.
func (srv *activityService) Remove(ctx context.Context, activityID string) (string, error) {
	activity, ok := srv.feed.Find(activityID)
	if !ok {
		return "", domainerrors.ErrActivityNotFound
	}

	if !activity.IsPlant {
		srv.feed.Remove(activityID)

		return usecase.MsgActivityRemoved, nil
	}

	if _, err := srv.products.DeleteProduct(ctx, activity.PlantID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Plant delete from activity failed",
			slog.String("activity_id", activityID),
			slog.String("product_id", activity.PlantID),
			slog.Any("error", err),
		)

		return "", err
	}
	srv.feed.Remove(activityID)

	return usecase.MsgPlantActivityDeleted, nil
}

func (srv *activityService) PlantCount(_ context.Context) int {
	return srv.feed.PlantCount()
}
