package response

import (
	"time"

	"repairhub/internal/domain/entities"
)

type AuditEntryResponse struct {
	Action string    `json:"action"`
	Note   string    `json:"note"`
	At     time.Time `json:"at"`
}

type OrderItemResponse struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image,omitempty"`
}

type CustomerInfoResponse struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

type OrderResponse struct {
	ID        string               `json:"id"`
	Items     []OrderItemResponse  `json:"items"`
	Total     float64              `json:"total"`
	Status    string               `json:"status"`
	Customer  CustomerInfoResponse `json:"customer"`
	Notes     string               `json:"notes,omitempty"`
	Audit     []AuditEntryResponse `json:"audit"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
			Image:     it.Image,
		})
	}
	audit := make([]AuditEntryResponse, 0, len(o.Audit))
	for _, e := range o.Audit {
		audit = append(audit, AuditEntryResponse{Action: e.Action, Note: e.Note, At: e.At})
	}
	return OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		Status:    string(o.Status),
		Customer:  fromCustomerInfo(o.Customer),
		Notes:     o.Notes,
		Audit:     audit,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func fromCustomerInfo(c entities.CustomerInfo) CustomerInfoResponse {
	return CustomerInfoResponse{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}
