package usecase

import (
	"context"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
)

// CreatePlantInput is the raw form of the add-plant screen
type CreatePlantInput struct {
	Image       service.ImageSource // nil when no image was picked
	Name        string
	Type        string
	Price       string
	Description string
}

// UpdatePlantInput is the raw form of the edit-plant screen
type UpdatePlantInput struct {
	ProductID string
	// Image is nil when the plant keeps its current image
	Image       service.ImageSource
	Name        string
	Type        string
	Price       string
	Description string
	// CurrentImageURL is the image the client last saw; when empty the stored one is used
	CurrentImageURL string
}

// PlantOutput reports a successful create or update
type PlantOutput struct {
	Product   *entity.Product `json:"product"`
	PlantType string          `json:"plantType"`
	Message   string          `json:"-"`
}

// ProductUsecase defines the catalog use cases
type ProductUsecase interface {
	// CreatePlant validates the form, uploads the image and persists a new product
	CreatePlant(ctx context.Context, input *CreatePlantInput) (*PlantOutput, error)

	// UpdatePlant validates the form, uploads a new image when given and merges the changes
	UpdatePlant(ctx context.Context, input *UpdatePlantInput) (*PlantOutput, error)

	// DeleteProduct removes a product and returns the success message
	DeleteProduct(ctx context.Context, productID string) (string, error)

	// GetProduct reads one product
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListProducts reads the whole catalog
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// PlantTag renders the PNG QR code of a product
	PlantTag(ctx context.Context, productID string) ([]byte, error)

	// ResolvePlantTag reads the product a scanned tag links to
	ResolvePlantTag(ctx context.Context, qrData string) (*entity.Product, error)
}
