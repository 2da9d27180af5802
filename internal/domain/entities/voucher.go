package entities

import "time"

// Voucher is a single-use promotional credit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: code (case-sensitive)
//
// Once used the voucher is terminal; there is no un-redeeming. Assignment
// is email XOR phone: whichever is set is the authoritative identity.

type Voucher struct {
	Code       string     `json:"code"`
	Amount     float64    `json:"amount"`
	Used       bool       `json:"used"`
	AssignedTo Identity   `json:"assignedTo"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (v Voucher) Assigned() bool {
	return !v.AssignedTo.IsZero()
}

// AssignedMatches reports whether the supplied identity is the one the
// voucher is assigned to. Unlike CustomerInfo matching, the supplied
// identity must present the assigned field itself: a voucher assigned to an
// email cannot be redeemed with only a phone.
func (v Voucher) AssignedMatches(supplied Identity) bool {
	if v.AssignedTo.Email != "" && v.AssignedTo.Email != supplied.Email {
		return false
	}
	if v.AssignedTo.Phone != "" && v.AssignedTo.Phone != supplied.Phone {
		return false
	}
	return true
}
