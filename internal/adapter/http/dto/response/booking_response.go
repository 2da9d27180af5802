package response

import (
	"time"

	"repairhub/internal/domain/entities"
)

type DeviceResponse struct {
	Type  string `json:"type,omitempty"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

type IssueResponse struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type ServiceOptionsResponse struct {
	Urgency       string `json:"urgency,omitempty"`
	Location      string `json:"location,omitempty"`
	PickupAddress string `json:"pickupAddress,omitempty"`
	ContactMethod string `json:"contactMethod,omitempty"`
}

type BookingResponse struct {
	ID             string                 `json:"id"`
	Device         DeviceResponse         `json:"device"`
	Issue          IssueResponse          `json:"issue"`
	ServiceOptions ServiceOptionsResponse `json:"serviceOptions"`
	Customer       CustomerInfoResponse   `json:"customer"`
	Status         string                 `json:"status"`

	QuoteAmount     float64    `json:"quoteAmount"`
	QuoteNote       string     `json:"quoteNote,omitempty"`
	QuoteStatus     string     `json:"quoteStatus"`
	QuoteAt         *time.Time `json:"quoteAt,omitempty"`
	QuoteAcceptedAt *time.Time `json:"quoteAcceptedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Device: DeviceResponse{Type: b.Device.Type, Brand: b.Device.Brand, Model: b.Device.Model},
		Issue:  IssueResponse{Type: b.Issue.Type, Description: b.Issue.Description},
		ServiceOptions: ServiceOptionsResponse{
			Urgency:       b.ServiceOptions.Urgency,
			Location:      b.ServiceOptions.Location,
			PickupAddress: b.ServiceOptions.PickupAddress,
			ContactMethod: b.ServiceOptions.ContactMethod,
		},
		Customer:        fromCustomerInfo(b.Customer),
		Status:          string(b.Status),
		QuoteAmount:     b.QuoteAmount,
		QuoteNote:       b.QuoteNote,
		QuoteStatus:     string(b.QuoteStatus),
		QuoteAt:         b.QuoteAt,
		QuoteAcceptedAt: b.QuoteAcceptedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
