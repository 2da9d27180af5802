package entities

import "time"

// OrderStatus is the order lifecycle state.
//
// The set is closed: handlers and usecases reject values outside it.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPaid,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether the status ends the normal lifecycle. Cancel and
// refund on a terminal order are only allowed when terminal override is
// enabled.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

const (
	AuditActionStatusChange = "status_change"
	AuditActionCancel       = "cancel"
	AuditActionRefund       = "refund"
)

// AuditEntry records one state transition. Entries are append-only and keep
// insertion order; they are never edited, reordered or truncated.

type AuditEntry struct {
	Action string    `json:"action"`
	Note   string    `json:"note"`
	At     time.Time `json:"at"`
}

type OrderItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image,omitempty"`
}

// CustomerInfo is the denormalized customer snapshot carried by orders and
// bookings. It is a copy taken at creation time, not a reference into the
// customer directory.

type CustomerInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

func (c CustomerInfo) Identity() Identity {
	return NewIdentity(c.Email, c.Phone)
}

// Order is the storefront order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The total is trusted as supplied by the storefront; the service performs
// no price arithmetic of its own.

type Order struct {
	ID        string       `json:"id"`
	Items     []OrderItem  `json:"items"`
	Total     float64      `json:"total"`
	Status    OrderStatus  `json:"status"`
	Customer  CustomerInfo `json:"customer"`
	Notes     string       `json:"notes,omitempty"`
	Audit     []AuditEntry `json:"audit"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
