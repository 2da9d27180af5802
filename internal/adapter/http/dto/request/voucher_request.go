package request

// CreateVoucherRequest is the staff voucher creation payload. The code is
// case-sensitive.
type CreateVoucherRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount"`
}

// AssignVoucherRequest assigns a voucher to an identity before redemption.
type AssignVoucherRequest struct {
	Code  string `json:"code" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RedeemVoucherRequest redeems a voucher for the supplied identity.
type RedeemVoucherRequest struct {
	Code  string `json:"code" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
