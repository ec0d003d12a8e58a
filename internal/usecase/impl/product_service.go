// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Validation messages of the plant forms, in the order they are checked.
const (
	MsgSelectImage      = "Please select a plant image"
	MsgEnterName        = "Please enter plant name"
	MsgEnterType        = "Please enter plant type"
	MsgEnterPrice       = "Please enter price"
	MsgEnterCare        = "Please enter care instructions"
	MsgInvalidPrice     = "Please enter valid price"
	MsgEnterProductID   = "Please select a plant"
	MsgCreateUploadFail = "Failed to upload image. Please try again."
	MsgUpdateUploadFail = "Failed to upload image"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo      repository.ProductRepository
	media            service.MediaService
	publisher        service.EventPublisher
	qrcode           service.QRCodeService
	feed             *ActivityFeed
	cleanupOnFailure bool
	logger           *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Media       service.MediaService
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Feed        *ActivityFeed
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	cleanup := false
	if params.Config != nil && params.Config.Media != nil {
		cleanup = params.Config.Media.CleanupOnFailure
	}

	return &productService{
		productRepo:      params.ProductRepo,
		media:            params.Media,
		publisher:        params.Publisher,
		qrcode:           params.QRCode,
		feed:             params.Feed,
		cleanupOnFailure: cleanup,
		logger:           params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// plantForm is the part of the create and update forms that is validated the same way.
type plantForm struct {
	name        string
	plantType   string
	price       string
	description string
}

// validate checks the text fields and returns the parsed price.
func (f plantForm) validate() (float64, error) {
	switch {
	case isBlank(f.name):
		return 0, domainerrors.NewValidationError(MsgEnterName)
	case isBlank(f.plantType):
		return 0, domainerrors.NewValidationError(MsgEnterType)
	case isBlank(f.price):
		return 0, domainerrors.NewValidationError(MsgEnterPrice)
	case isBlank(f.description):
		return 0, domainerrors.NewValidationError(MsgEnterCare)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.price), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, domainerrors.NewValidationError(MsgInvalidPrice)
	}

	return price, nil
}

// CreatePlant runs validate, upload, persist and report.
func (srv *productService) CreatePlant(ctx context.Context, input *usecase.CreatePlantInput) (*usecase.PlantOutput, error) {
	if input.Image == nil {
		return nil, domainerrors.NewValidationError(MsgSelectImage)
	}
	form := plantForm{name: input.Name, plantType: input.Type, price: input.Price, description: input.Description}
	price, err := form.validate()
	if err != nil {
		return nil, err
	}

	imageURL, err := srv.media.Upload(ctx, input.Image)
	if err != nil {
		srv.log(ctx).Error("Plant image upload failed", slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WithMessage(MsgCreateUploadFail).WithDetails(errors.Cause(err).Error())
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       price,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardImage(ctx, imageURL)

		return nil, mapProductError(err)
	}

	plantType := strings.TrimSpace(input.Type)
	srv.log(ctx).Info("Plant created",
		slog.String("product_id", product.ID),
		slog.String("product_name", product.Name),
	)

	srv.feed.RecordPlantAdded(product, plantType)
	srv.publish(ctx, constants.ProductEventCreated, product, "")

	return &usecase.PlantOutput{
		Product:   product,
		PlantType: plantType,
		Message:   repository.MsgProductAdded,
	}, nil
}

// UpdatePlant merges the editable fields into an existing record. The stored
// image is kept unless a new one is supplied; the replaced URL always comes from
// the stored record.
func (srv *productService) UpdatePlant(ctx context.Context, input *usecase.UpdatePlantInput) (*usecase.PlantOutput, error) {
	if isBlank(input.ProductID) {
		return nil, domainerrors.NewValidationError(MsgEnterProductID)
	}
	form := plantForm{name: input.Name, plantType: input.Type, price: input.Price, description: input.Description}
	price, err := form.validate()
	if err != nil {
		return nil, err
	}

	stored, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, mapProductError(err)
	}
	_, logger := deliverycontext.WithProduct(ctx, srv.logger, stored.ID)
	if current := strings.TrimSpace(input.CurrentImageURL); current != "" && current != stored.ImageURL {
		logger.Warn("Ignoring stale current image URL", slog.String("current_image_url", current))
	}

	imageURL := stored.ImageURL
	if input.Image != nil {
		imageURL, err = srv.media.Upload(ctx, input.Image)
		if err != nil {
			logger.Error("Plant image upload failed", slog.Any("error", err))

			return nil, domainerrors.ErrUploadFailed.WithMessage(MsgUpdateUploadFail).WithDetails(errors.Cause(err).Error())
		}
	}

	product := &entity.Product{
		ID:          stored.ID,
		Name:        strings.TrimSpace(input.Name),
		Price:       price,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL,
	}
	if err := srv.productRepo.Update(ctx, product.ID, product.UpdateFields()); err != nil {
		if input.Image != nil {
			srv.discardImage(ctx, imageURL)
		}

		return nil, mapProductError(err)
	}

	plantType := strings.TrimSpace(input.Type)
	logger.Info("Plant updated", slog.Bool("new_image", input.Image != nil))

	if !srv.feed.RecordPlantUpdated(product, plantType) {
		logger.Debug("No activity entry for updated plant")
	}
	previous := ""
	if stored.ImageURL != imageURL {
		previous = stored.ImageURL
	}
	srv.publish(ctx, constants.ProductEventUpdated, product, previous)

	return &usecase.PlantOutput{
		Product:   product,
		PlantType: plantType,
		Message:   repository.MsgProductUpdated,
	}, nil
}

// DeleteProduct removes the record. The stored image URL is read first so the
// deleted event can carry it; that read is best effort.
func (srv *productService) DeleteProduct(ctx context.Context, productID string) (string, error) {
	if isBlank(productID) {
		return "", domainerrors.NewValidationError(MsgEnterProductID)
	}

	deleted, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		srv.log(ctx).Debug("Deleting plant without a readable record",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)
		deleted = &entity.Product{ID: productID}
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return "", mapProductError(err)
	}

	srv.log(ctx).Info("Plant deleted", slog.String("product_id", productID))
	srv.feed.RemovePlant(productID)
	srv.publish(ctx, constants.ProductEventDeleted, deleted, "")

	return repository.MsgProductDeleted, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, mapProductError(err)
	}

	return products, nil
}

// PlantTag renders the QR code of an existing product.
func (srv *productService) PlantTag(ctx context.Context, productID string) ([]byte, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, mapProductError(err)
	}

	png, err := srv.qrcode.GeneratePlantTag(productID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

// ResolvePlantTag reads the product behind a scanned tag.
func (srv *productService) ResolvePlantTag(ctx context.Context, qrData string) (*entity.Product, error) {
	productID, err := srv.qrcode.ParsePlantTag(qrData)
	if err != nil {
		return nil, domainerrors.NewValidationError("Not a plant tag").WithDetails(err.Error())
	}

	return srv.GetProduct(ctx, productID)
}

// discardImage removes an orphaned upload when cleanup is enabled.
func (srv *productService) discardImage(ctx context.Context, imageURL string) {
	if !srv.cleanupOnFailure {
		return
	}

	if err := srv.media.Delete(ctx, imageURL); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned image",
			slog.String("image_url", imageURL),
			slog.Any("error", err),
		)

		return
	}
	srv.log(ctx).Info("Deleted orphaned image", slog.String("image_url", imageURL))
}

// publish sends a product event. Failures are logged and never fail the caller.
func (srv *productService) publish(ctx context.Context, eventType string, product *entity.Product, previousImageURL string) {
	event := &service.ProductEvent{
		RequestID:        deliverycontext.RequestIDFromContext(ctx),
		Type:             eventType,
		ProductID:        product.ID,
		ProductName:      product.Name,
		Price:            product.Price,
		ImageURL:         product.ImageURL,
		PreviousImageURL: previousImageURL,
		OccurredAt:       time.Now().UTC(),
	}

	if err := srv.publisher.PublishProductEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish product event",
			slog.String("event_type", eventType),
			slog.String("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

// mapProductError converts repository errors into application errors.
func mapProductError(err error) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrRecordDecode):
		return domainerrors.ErrRecordDecodeFailed.WithDetails(err.Error())
	case errors.As(err, &appErr):
		return appErr
	default:
		return domainerrors.NewPersistenceError(err)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
