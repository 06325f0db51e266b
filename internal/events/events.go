package events

import (
	"context"
	"time"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/domain"
)

const (
	ProductCreated      = "product.created"
	ProductUpdated      = "product.updated"
	ProductDeleted      = "product.deleted"
	ProductStockToggled = "product.stock_toggled"
	CategoryCreated     = "category.created"
	CategoryUpdated     = "category.updated"
	CategoryDeleted     = "category.deleted"
)

// Event announces a catalog change after it was written to the store.
type Event struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       domain.Document `json:"data,omitempty"`
}

func New(eventType, id string, data domain.Document) Event {
	return Event{
		Type:       eventType,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
