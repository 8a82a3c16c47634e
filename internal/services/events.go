package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Catalog event routing keys.
const (
	EventCategoryCreated = "category.created"
	EventCategoryUpdated = "category.updated"
	EventCategoryDeleted = "category.deleted"
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
)

// EventPublisher delivers catalog change events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CatalogEvent is the JSON envelope of every published event.
type CatalogEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   uint      `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

// emitEvent publishes best effort: the write it reports on has already
// committed, so failures are logged and never returned.
func emitEvent(publisher EventPublisher, eventType string, entityID uint, data any) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(CatalogEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for %d: %v", eventType, entityID, err)
		return
	}

	if err := publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %d: %v", eventType, entityID, err)
	}
}
