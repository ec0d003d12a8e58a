package usecase

import "plantcare/internal/domain/entity"

// CatalogState is the live view of the product collection
type CatalogState struct {
	Loading  bool              `json:"loading"`
	Products []*entity.Product `json:"products"`
	// Message is empty while the subscription is healthy
	Message string `json:"message,omitempty"`
}

// CatalogUsecase exposes the live catalog
type CatalogUsecase interface {
	// Current returns the latest state
	Current() CatalogState

	// Subscribe streams states until cancel is called
	Subscribe() (<-chan CatalogState, func())
}
