package services

import (
	"errors"
	"log"
	"time"

	"backoffice/internal/models"
	"backoffice/pkg/rabbitmq"

	"github.com/google/uuid"
)

var (
	// ErrAccountRequired is returned when an order does not name its account.
	ErrAccountRequired = errors.New("account ID is required")
	// ErrInvalidReference is returned when an order references a missing account or product.
	ErrInvalidReference = errors.New("referenced entity not found")
)

// Change event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventPublisher publishes resource change events. A nil EventPublisher disables publishing.
type EventPublisher interface {
	PublishEvent(event rabbitmq.Event) error
}

// publishChange sends a change event. Failures are logged, never returned:
// the mutation has already been committed.
func publishChange(publisher EventPublisher, resource models.Resource, action string, entityID int64) {
	if publisher == nil {
		return
	}
	event := rabbitmq.Event{
		ID:         uuid.New().String(),
		Resource:   resource.String(),
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishEvent(event); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s %d: %v", event.RoutingKey(), resource, entityID, err)
	}
}
