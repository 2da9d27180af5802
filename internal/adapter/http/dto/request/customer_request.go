package request

import "repairhub/internal/domain/entities"

// CustomerInfoRequest is the customer snapshot sent by checkout and booking
// forms. Some forms send a single name field instead of first/last.
type CustomerInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (r CustomerInfoRequest) ToEntity() entities.CustomerInfo {
	return entities.CustomerInfo{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// UpsertCustomerRequest is the directory upsert payload. Email or phone is
// required; the usecase rejects a payload with neither.
type UpsertCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (r UpsertCustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// IdentityRequest carries the email/phone pair used for customer-side
// authorization on quote and voucher actions.
type IdentityRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r IdentityRequest) Identity() entities.Identity {
	return entities.NewIdentity(r.Email, r.Phone)
}
