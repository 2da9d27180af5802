package entities

import "strings"

// Identity is the email-or-phone pair customers are keyed by across orders,
// bookings and vouchers. Whichever field is set is authoritative.
//
// Normalization happens here and nowhere else: emails are trimmed and
// lower-cased, phones are trimmed. Every comparison in the system goes
// through a normalized Identity.

type Identity struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewIdentity(email, phone string) Identity {
	return Identity{
		Email: NormalizeEmail(email),
		Phone: strings.TrimSpace(phone),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (i Identity) IsZero() bool {
	return i.Email == "" && i.Phone == ""
}

// Key returns the value used to locate a customer record: email when
// present, otherwise phone.
func (i Identity) Key() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Phone
}

// Matches reports whether the supplied identity is allowed to act on a
// record carrying this identity. The check is applied to whichever of
// email/phone is present on both sides; a record with no identity on file
// matches anything.
func (i Identity) Matches(supplied Identity) bool {
	if i.Email != "" && supplied.Email != "" && i.Email != supplied.Email {
		return false
	}
	if i.Phone != "" && supplied.Phone != "" && i.Phone != supplied.Phone {
		return false
	}
	return true
}
