package response

import (
	"time"

	"repairhub/internal/domain/entities"
)

type AssignmentResponse struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type VoucherResponse struct {
	Code       string             `json:"code"`
	Amount     float64            `json:"amount"`
	Used       bool               `json:"used"`
	AssignedTo AssignmentResponse `json:"assignedTo"`
	UsedAt     *time.Time         `json:"usedAt,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func FromVoucher(v entities.Voucher) VoucherResponse {
	return VoucherResponse{
		Code:       v.Code,
		Amount:     v.Amount,
		Used:       v.Used,
		AssignedTo: AssignmentResponse{Email: v.AssignedTo.Email, Phone: v.AssignedTo.Phone},
		UsedAt:     v.UsedAt,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromVouchers(vouchers []entities.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, FromVoucher(v))
	}
	return out
}
