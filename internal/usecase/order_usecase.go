package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairhub/internal/domain/entities"
	"repairhub/internal/infrastructure/metrics"
	"repairhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
	ErrOrderTerminal       = errors.New("order already in a terminal status")
)

// statusUpdateAttempts bounds the read-modify-write retry loop in SetStatus.
const statusUpdateAttempts = 3

// IOrderUseCase exposes the order lifecycle operations.
//
// Every status change that actually changes the status appends exactly one
// audit entry; same-status calls are no-ops on the audit log.

type IOrderUseCase interface {
	Create(ctx context.Context, draft OrderDraft) (entities.Order, error)
	List(ctx context.Context, ident entities.Identity) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, id string, patch OrderPatch) (entities.Order, error)
	SetStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Cancel(ctx context.Context, id, note string) (entities.Order, error)
	Refund(ctx context.Context, id, note string) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderDraft is the checkout submission. The total is trusted as supplied.
type OrderDraft struct {
	Items    []entities.OrderItem
	Total    float64
	Customer entities.CustomerInfo
	Notes    string
}

// OrderPatch is the validated staff edit payload. Nil fields are untouched.
type OrderPatch struct {
	Status *entities.OrderStatus
	Notes  *string
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	customers ICustomerUseCase
	events    interfaces.IEventPublisher
	cache     interfaces.IRecordCache[entities.Order]

	// allowTerminalOverride preserves the historical behavior of letting
	// staff cancel or refund an order that is already completed. When false,
	// cancel/refund on a terminal order fails with ErrOrderTerminal.
	allowTerminalOverride bool
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	customers ICustomerUseCase,
	events interfaces.IEventPublisher,
	cache interfaces.IRecordCache[entities.Order],
	allowTerminalOverride bool,
) *OrderUseCase {
	return &OrderUseCase{
		repo:                  repo,
		customers:             customers,
		events:                events,
		cache:                 cache,
		allowTerminalOverride: allowTerminalOverride,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, draft OrderDraft) (entities.Order, error) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:        uuid.NewString(),
		Items:     draft.Items,
		Total:     draft.Total,
		Status:    entities.OrderStatusPending,
		Customer:  draft.Customer,
		Notes:     strings.TrimSpace(draft.Notes),
		Audit:     []entities.AuditEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if u.customers != nil && !created.Customer.Identity().IsZero() {
		if _, err := u.customers.Upsert(ctx, entities.Customer{
			FirstName: created.Customer.FirstName,
			LastName:  created.Customer.LastName,
			Email:     created.Customer.Email,
			Phone:     created.Customer.Phone,
			Address:   created.Customer.Address,
		}); err != nil {
			return entities.Order{}, err
		}
	}

	metrics.OrdersCreatedTotal.Inc()
	u.publish(ctx, "order_created", created.ID, created)
	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context, ident entities.Identity) ([]entities.Order, error) {
	return u.repo.List(ctx, ident)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.cache != nil {
		if o, ok := u.cache.Get(id); ok {
			return o, nil
		}
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if u.cache != nil {
		u.cache.Set(id, o)
	}
	return o, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, patch OrderPatch) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if patch.Notes != nil {
		current, err = u.repo.SetNotes(ctx, id, strings.TrimSpace(*patch.Notes), time.Now().UTC())
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		u.invalidate(id)
	}

	if patch.Status != nil {
		return u.SetStatus(ctx, id, *patch.Status)
	}
	return current, nil
}

func (u *OrderUseCase) SetStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	for attempt := 0; attempt < statusUpdateAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		if current.Status == status {
			// Idempotent: no status change, no audit entry.
			return current, nil
		}

		entry := entities.AuditEntry{
			Action: entities.AuditActionStatusChange,
			Note:   fmt.Sprintf("%s -> %s", current.Status, status),
			At:     time.Now().UTC(),
		}
		updated, err := u.repo.UpdateStatus(ctx, id, current.Status, status, entry)
		if err != nil {
			return entities.Order{}, err
		}
		if updated.ID != "" {
			u.invalidate(id)
			metrics.OrderStatusChangesTotal.WithLabelValues(string(status)).Inc()
			u.publish(ctx, "order_status_changed", id, updated)
			return updated, nil
		}
		// Condition failed: the status moved underneath us (or the record
		// vanished). Re-read and try again.
	}
	return entities.Order{}, ErrOrderStatusConflict
}

func (u *OrderUseCase) Cancel(ctx context.Context, id, note string) (entities.Order, error) {
	return u.forceStatus(ctx, id, note, entities.OrderStatusCancelled, entities.AuditActionCancel)
}

func (u *OrderUseCase) Refund(ctx context.Context, id, note string) (entities.Order, error) {
	return u.forceStatus(ctx, id, note, entities.OrderStatusRefunded, entities.AuditActionRefund)
}

func (u *OrderUseCase) forceStatus(ctx context.Context, id, note string, status entities.OrderStatus, action string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !u.allowTerminalOverride && current.Status.Terminal() {
		return entities.Order{}, ErrOrderTerminal
	}

	entry := entities.AuditEntry{
		Action: action,
		Note:   strings.TrimSpace(note),
		At:     time.Now().UTC(),
	}
	updated, err := u.repo.ForceStatus(ctx, id, status, entry)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	u.invalidate(id)
	metrics.OrderStatusChangesTotal.WithLabelValues(string(status)).Inc()
	u.publish(ctx, "order_"+action, id, updated)
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	u.invalidate(id)
	return nil
}

func (u *OrderUseCase) invalidate(id string) {
	if u.cache != nil {
		u.cache.Delete(id)
	}
}

func (u *OrderUseCase) publish(ctx context.Context, eventType, id string, payload interface{}) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, eventType, id, payload); err != nil {
		log.Printf("[order][usecase] publish %s failed for %s: %v", eventType, id, err)
	}
}
