package entities

import "time"

// Customer is a directory record keyed by email-or-phone identity.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Upserts are last-write-wins: a later order or booking submission with the
// same identity overwrites whatever non-empty fields it carries.

type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Customer) Identity() Identity {
	return NewIdentity(c.Email, c.Phone)
}

// Merge applies non-empty incoming fields over the existing record.
func (c Customer) Merge(in Customer) Customer {
	out := c
	if in.FirstName != "" {
		out.FirstName = in.FirstName
	}
	if in.LastName != "" {
		out.LastName = in.LastName
	}
	if in.Email != "" {
		out.Email = in.Email
	}
	if in.Phone != "" {
		out.Phone = in.Phone
	}
	if in.Address != "" {
		out.Address = in.Address
	}
	return out
}
