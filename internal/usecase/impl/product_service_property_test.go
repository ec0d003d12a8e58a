package impl

import (
	"context"
	"strconv"
	"testing"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
)

// countingMedia records uploads and fails them on demand.
type countingMedia struct {
	service.MediaService
	fail    bool
	uploads int
	order   *[]string
}

func (m *countingMedia) Upload(context.Context, service.ImageSource) (string, error) {
	m.uploads++
	*m.order = append(*m.order, "upload")
	if m.fail {
		return "", service.ErrUploadFailed
	}

	return "https://media.example.com/plant", nil
}

// countingProducts records creates and fails them on demand.
type countingProducts struct {
	repository.ProductRepository
	fail    bool
	creates int
	order   *[]string
}

func (r *countingProducts) Create(_ context.Context, product *entity.Product) error {
	r.creates++
	*r.order = append(*r.order, "create")
	if r.fail {
		return errors.New("Permission denied")
	}
	product.ID = "generated"

	return nil
}

type silentPublisher struct{}

func (silentPublisher) PublishProductEvent(context.Context, *service.ProductEvent) error { return nil }

func (silentPublisher) Close() error { return nil }

func newCountingProductService(uploadFails, persistFails bool) (usecase.ProductUsecase, *countingMedia, *countingProducts, *[]string) {
	order := &[]string{}
	media := &countingMedia{fail: uploadFails, order: order}
	products := &countingProducts{fail: persistFails, order: order}

	srv := NewProductService(ProductServiceParams{
		ProductRepo: products,
		Media:       media,
		Publisher:   silentPublisher{},
		Feed:        NewActivityFeed(newTestConfig(false)),
		Config:      newTestConfig(false),
		Logger:      newDiscardLogger(),
	})

	return srv, media, products, order
}

func TestProductService_CreatePlant_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("valid input uploads once, persists only after a successful upload", prop.ForAll(
		func(name, plantType, care string, price float64, uploadFails, persistFails bool) bool {
			srv, media, products, order := newCountingProductService(uploadFails, persistFails)

			out, err := srv.CreatePlant(context.Background(), &usecase.CreatePlantInput{
				Image:       newImageStub(name + ".jpg"),
				Name:        name,
				Type:        plantType,
				Price:       strconv.FormatFloat(price, 'f', -1, 64),
				Description: care,
			})

			if media.uploads != 1 {
				return false
			}
			if uploadFails {
				return products.creates == 0 && err != nil && out == nil
			}
			if products.creates != 1 || (*order)[0] != "upload" || (*order)[1] != "create" {
				return false
			}

			return (err == nil) == !persistFails
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
		gen.Float64Range(0, 100000),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("a blank required field blocks upload and persist", prop.ForAll(
		func(field int) bool {
			srv, media, products, _ := newCountingProductService(false, false)

			input := &usecase.CreatePlantInput{
				Image:       newImageStub("plant.jpg"),
				Name:        "Monstera",
				Type:        "Tropical",
				Price:       "25.99",
				Description: "Water weekly",
			}
			switch field {
			case 0:
				input.Image = nil
			case 1:
				input.Name = ""
			case 2:
				input.Type = " "
			case 3:
				input.Price = ""
			case 4:
				input.Description = "\t"
			}

			_, err := srv.CreatePlant(context.Background(), input)

			return err != nil && media.uploads == 0 && products.creates == 0
		},
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
