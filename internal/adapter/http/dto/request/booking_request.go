package request

import "repairhub/internal/domain/entities"

type DeviceRequest struct {
	Type  string `json:"type"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type IssueRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type ServiceOptionsRequest struct {
	Urgency       string `json:"urgency"`
	Location      string `json:"location"`
	PickupAddress string `json:"pickupAddress"`
	ContactMethod string `json:"contactMethod"`
}

// CreateBookingRequest is the repair-request submission.
type CreateBookingRequest struct {
	Device         DeviceRequest         `json:"device"`
	Issue          IssueRequest          `json:"issue"`
	ServiceOptions ServiceOptionsRequest `json:"serviceOptions"`
	Customer       CustomerInfoRequest   `json:"customer"`
}

func (r CreateBookingRequest) ToDevice() entities.Device {
	return entities.Device{Type: r.Device.Type, Brand: r.Device.Brand, Model: r.Device.Model}
}

func (r CreateBookingRequest) ToIssue() entities.Issue {
	return entities.Issue{Type: r.Issue.Type, Description: r.Issue.Description}
}

func (r CreateBookingRequest) ToOptions() entities.ServiceOptions {
	return entities.ServiceOptions{
		Urgency:       r.ServiceOptions.Urgency,
		Location:      r.ServiceOptions.Location,
		PickupAddress: r.ServiceOptions.PickupAddress,
		ContactMethod: r.ServiceOptions.ContactMethod,
	}
}

// UpdateBookingRequest is the staff edit payload for booking-level status.
type UpdateBookingRequest struct {
	Status *string `json:"status"`
}

// QuoteRequest is the staff quote proposal. Amount is a pointer so a
// missing field is distinguishable from zero; both are rejected.
type QuoteRequest struct {
	Amount *float64 `json:"amount"`
	Note   string   `json:"note"`
}

func (r QuoteRequest) ResolveAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}
