package interfaces

import (
	"context"
	"time"

	"repairhub/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Conditional updates follow the repository convention: a zero-value entity
// with a nil error means the condition failed (record missing or concurrent
// change); the caller decides what that means.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// List returns orders newest-first, optionally filtered to those whose
	// customer snapshot matches the identity.
	List(ctx context.Context, ident entities.Identity) ([]entities.Order, error)
	// UpdateStatus transitions status from->to and appends the audit entry in
	// a single conditional write. Fails the condition when the stored status
	// is no longer `from`.
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error)
	// ForceStatus sets the status and appends the audit entry regardless of
	// the current status (cancel/refund path).
	ForceStatus(ctx context.Context, id string, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error)
	SetNotes(ctx context.Context, id, notes string, at time.Time) (entities.Order, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
