// Package entity contains the core business objects of the project.
// JSON keys follow the layout of the records in the realtime store.
package entity

// Product is a plant listed in the catalog.
type Product struct {
	ID          string  `json:"productID"`   // Assigned by the store gateway, never changes.
	Name        string  `json:"productName"` // Display name of the plant.
	Price       float64 `json:"price"`       // Non-negative price.
	Description string  `json:"description"` // Care instructions.
	ImageURL    string  `json:"image"`       // Public HTTPS URL returned by the media host.
}

// Store keys of the product fields that an update may change.
const (
	ProductFieldName        = "productName"
	ProductFieldPrice       = "price"
	ProductFieldDescription = "description"
	ProductFieldImage       = "image"
)

// UpdateFields returns the partial-update payload for the editable fields.
// The id is not part of it.
func (p *Product) UpdateFields() map[string]any {
	return map[string]any{
		ProductFieldName:        p.Name,
		ProductFieldPrice:       p.Price,
		ProductFieldDescription: p.Description,
		ProductFieldImage:       p.ImageURL,
	}
}
