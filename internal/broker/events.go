package broker

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Catalog change events. Published after a product write commits so external
// consumers (feeds, indexers) can refresh; the catalog pages themselves never
// read from here, they always hit the store.
const (
	EventProductCreated = "catalog.product.created"
	EventProductUpdated = "catalog.product.updated"
	EventProductDeleted = "catalog.product.deleted"
)

type CatalogEvent struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	Username   string `json:"username"`
	SellerID   string `json:"seller_id"`
	ProductID  string `json:"product_id"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher adapts the Kafka producer to the services.CatalogNotifier
// interface.
type EventPublisher struct {
	producer *Producer
}

func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

func (ep *EventPublisher) ProductCreated(ctx context.Context, username, sellerID, productID string) error {
	return ep.publish(ctx, EventProductCreated, username, sellerID, productID)
}

func (ep *EventPublisher) ProductUpdated(ctx context.Context, username, sellerID, productID string) error {
	return ep.publish(ctx, EventProductUpdated, username, sellerID, productID)
}

func (ep *EventPublisher) ProductDeleted(ctx context.Context, username, sellerID, productID string) error {
	return ep.publish(ctx, EventProductDeleted, username, sellerID, productID)
}

func (ep *EventPublisher) publish(ctx context.Context, eventType, username, sellerID, productID string) error {
	event := CatalogEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Username:   username,
		SellerID:   sellerID,
		ProductID:  productID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	return ep.producer.Publish(ctx, "catalog-"+sellerID, event)
}
