package entities

import "time"

// BookingStatus is the booking-level lifecycle state. Staff may set any
// value from the closed set; there are no transition restrictions at this
// level, the quote workflow below carries its own.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// QuoteStatus is the quote negotiation sub-state, tracked independently of
// the booking status.
//
// Transitions: none --propose--> proposed --accept--> accepted,
// proposed --decline--> declined. Propose is valid from any state (staff
// override) and always resets to proposed.

type QuoteStatus string

const (
	QuoteStatusNone     QuoteStatus = "none"
	QuoteStatusProposed QuoteStatus = "proposed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

type Device struct {
	Type  string `json:"type,omitempty"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

type Issue struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type ServiceOptions struct {
	Urgency       string `json:"urgency,omitempty"`
	Location      string `json:"location,omitempty"`
	PickupAddress string `json:"pickupAddress,omitempty"`
	ContactMethod string `json:"contactMethod,omitempty"`
}

// Booking is a device-repair appointment persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id

type Booking struct {
	ID             string         `json:"id"`
	Device         Device         `json:"device"`
	Issue          Issue          `json:"issue"`
	ServiceOptions ServiceOptions `json:"serviceOptions"`
	Customer       CustomerInfo   `json:"customer"`
	Status         BookingStatus  `json:"status"`

	QuoteAmount     float64     `json:"quoteAmount"`
	QuoteNote       string      `json:"quoteNote,omitempty"`
	QuoteStatus     QuoteStatus `json:"quoteStatus"`
	QuoteAt         *time.Time  `json:"quoteAt,omitempty"`
	QuoteAcceptedAt *time.Time  `json:"quoteAcceptedAt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
