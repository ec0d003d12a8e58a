package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"plantcare/internal/delivery/api/response"
	deliverycontext "plantcare/internal/delivery/context"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/media"
	"plantcare/internal/usecase"
	"plantcare/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Multipart form fields of the plant screens
const (
	formFieldImage           = "image"
	formFieldName            = "name"
	formFieldType            = "type"
	formFieldPrice           = "price"
	formFieldDescription     = "description"
	formFieldCurrentImageURL = "currentImageUrl"
	catalogEventName         = "catalog"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the plant catalog
type ProductHandler struct {
	productUC usecase.ProductUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ScanPlantTagRequest represents the decoded content of a scanned tag
type ScanPlantTagRequest struct {
	QRData string `json:"qrData" validate:"required,max=2048"`
}

// imageFromForm returns nil when the form carries no image.
func imageFromForm(c echo.Context) (service.ImageSource, error) {
	header, err := c.FormFile(formFieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewValidationError("Invalid plant form").WithDetails(err.Error())
	}

	return media.NewMultipartSource(header), nil
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	image, err := imageFromForm(c)
	if err != nil {
		return err
	}

	output, err := h.productUC.CreatePlant(c.Request().Context(), &usecase.CreatePlantInput{
		Image:       image,
		Name:        c.FormValue(formFieldName),
		Type:        c.FormValue(formFieldType),
		Price:       c.FormValue(formFieldPrice),
		Description: c.FormValue(formFieldDescription),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, output.Message)
}

// UpdateProduct handles PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	image, err := imageFromForm(c)
	if err != nil {
		return err
	}

	output, err := h.productUC.UpdatePlant(c.Request().Context(), &usecase.UpdatePlantInput{
		ProductID:       c.Param("id"),
		Image:           image,
		Name:            c.FormValue(formFieldName),
		Type:            c.FormValue(formFieldType),
		Price:           c.FormValue(formFieldPrice),
		Description:     c.FormValue(formFieldDescription),
		CurrentImageURL: c.FormValue(formFieldCurrentImageURL),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	message, err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// GetProduct handles GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, repository.MsgProductFetched)
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, repository.MsgProductFetched)
}

// PlantTag handles GET /api/v1/products/:id/qrcode
func (h *ProductHandler) PlantTag(c echo.Context) error {
	png, err := h.productUC.PlantTag(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanPlantTag handles POST /api/v1/products/scan
func (h *ProductHandler) ScanPlantTag(c echo.Context) error {
	var req ScanPlantTagRequest
	if err := bindAndValidate(c, &req, "Invalid plant tag"); err != nil {
		return err
	}

	product, err := h.productUC.ResolvePlantTag(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, repository.MsgProductFetched)
}

// StreamProducts handles GET /api/v1/products/stream as Server-Sent Events.
// Each event carries the whole catalog state; the stream ends with the request.
func (h *ProductHandler) StreamProducts(c echo.Context) error {
	states, cancel := h.catalogUC.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Debug("Catalog stream opened")
	opened := time.Now()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Catalog stream closed", slog.String("open_for", util.FormatDuration(time.Since(opened))))

			return nil
		case state, ok := <-states:
			if !ok {
				return nil
			}
			if err := writeEvent(res, catalogEventName, state); err != nil {
				logger.Debug("Catalog stream write failed", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.Wrap(err, "write event")
	}
	res.Flush()

	return nil
}
