package request

import (
	"repairhub/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

// CreateOrderRequest is the checkout submission. The total is stored as
// supplied; the service does not recompute it from the items.
type CreateOrderRequest struct {
	Items    []OrderItemRequest  `json:"items" binding:"required"`
	Total    float64             `json:"total"`
	Customer CustomerInfoRequest `json:"customer"`
	Notes    string              `json:"notes"`
}

func (r CreateOrderRequest) ToDraft() (items []entities.OrderItem, total float64, customer entities.CustomerInfo, notes string) {
	items = make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		items = append(items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       qty,
			Image:     it.Image,
		})
	}
	return items, r.Total, r.Customer.ToEntity(), r.Notes
}

// UpdateOrderRequest is the staff edit payload. Only the listed fields are
// accepted; anything else in the body is dropped.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// NoteRequest is the cancel/refund payload. The note may be empty.
type NoteRequest struct {
	Note string `json:"note"`
}
