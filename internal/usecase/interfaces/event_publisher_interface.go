package interfaces

import "context"

// IEventPublisher emits domain events after successful state transitions.
//
// Publishing is fire-and-forget from the usecases' point of view: failures
// are logged by the implementation and never fail the originating request.

type IEventPublisher interface {
	Publish(ctx context.Context, eventType, entityID string, payload interface{}) error
	Close() error
}
