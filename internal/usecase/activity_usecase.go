package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
)

// Messages reported after removing a feed entry
const (
	MsgPlantActivityDeleted = "Plant deleted successfully"
	MsgActivityRemoved      = "Activity removed"
)

// ActivityUsecase defines the recent activity feed use cases
type ActivityUsecase interface {
	// List returns the feed, newest first
	List(ctx context.Context) []*entity.Activity

	// Remove drops an entry; for plant entries the product is deleted first
	Remove(ctx context.Context, activityID string) (string, error)

	// PlantCount is the number of plant entries in the feed
	PlantCount(ctx context.Context) int
}
