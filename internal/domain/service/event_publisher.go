package service

import (
	"context"
	"time"
)

// ProductEvent is emitted after a catalog change has been persisted
type ProductEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	Type        string  `json:"type"`                 // constants.ProductEvent*
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	// PreviousImageURL is set when an update replaced the image
	PreviousImageURL string    `json:"previous_image_url,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProductEvent publishes a catalog change
	PublishProductEvent(ctx context.Context, event *ProductEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
