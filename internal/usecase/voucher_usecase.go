package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairhub/internal/domain/entities"
	"repairhub/internal/infrastructure/metrics"
	"repairhub/internal/usecase/interfaces"
)

var (
	ErrVoucherNotFound      = errors.New("voucher not found")
	ErrVoucherExists        = errors.New("voucher code already exists")
	ErrInvalidVoucherCode   = errors.New("invalid voucher code")
	ErrInvalidVoucherAmount = errors.New("invalid voucher amount")
	ErrVoucherUsed          = errors.New("voucher already used")
	ErrVoucherForbidden     = errors.New("voucher assigned to a different identity")
)

// IVoucherUseCase is the voucher ledger: single-use promotional credits
// with an optional pre-redemption assignment.
//
// Redemption is terminal. An unassigned voucher is assigned to the
// redeeming identity at redemption time (assign-on-redeem).

type IVoucherUseCase interface {
	Create(ctx context.Context, code string, amount float64) (entities.Voucher, error)
	List(ctx context.Context) ([]entities.Voucher, error)
	ListByCustomer(ctx context.Context, ident entities.Identity) ([]entities.Voucher, error)
	Assign(ctx context.Context, code string, ident entities.Identity) (entities.Voucher, error)
	Redeem(ctx context.Context, code string, ident entities.Identity) (entities.Voucher, error)
	Delete(ctx context.Context, code string) error
}

type VoucherUseCase struct {
	repo   interfaces.IVoucherRepository
	events interfaces.IEventPublisher
}

var _ IVoucherUseCase = (*VoucherUseCase)(nil)

func NewVoucherUseCase(repo interfaces.IVoucherRepository, events interfaces.IEventPublisher) *VoucherUseCase {
	return &VoucherUseCase{repo: repo, events: events}
}

func (u *VoucherUseCase) Create(ctx context.Context, code string, amount float64) (entities.Voucher, error) {
	// Codes are case-sensitive; only surrounding whitespace is stripped.
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Voucher{}, ErrInvalidVoucherCode
	}
	if amount <= 0 {
		return entities.Voucher{}, ErrInvalidVoucherAmount
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Voucher{
		Code:      code,
		Amount:    amount,
		Used:      false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Voucher{}, err
	}
	if created.Code == "" {
		// Conditional put failed: the code already exists.
		return entities.Voucher{}, ErrVoucherExists
	}
	metrics.VouchersCreatedTotal.Inc()
	return created, nil
}

func (u *VoucherUseCase) List(ctx context.Context) ([]entities.Voucher, error) {
	return u.repo.List(ctx)
}

func (u *VoucherUseCase) ListByCustomer(ctx context.Context, ident entities.Identity) ([]entities.Voucher, error) {
	if ident.IsZero() {
		return nil, ErrMissingIdentity
	}
	return u.repo.ListByIdentity(ctx, ident)
}

func (u *VoucherUseCase) Assign(ctx context.Context, code string, ident entities.Identity) (entities.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Voucher{}, ErrInvalidVoucherCode
	}
	if ident.IsZero() {
		return entities.Voucher{}, ErrMissingIdentity
	}
	// Assignment is email XOR phone; email wins when both are supplied.
	if ident.Email != "" {
		ident.Phone = ""
	}

	// Last assignment wins, used or not.
	updated, err := u.repo.Assign(ctx, code, ident, time.Now().UTC())
	if err != nil {
		return entities.Voucher{}, err
	}
	if updated.Code == "" {
		return entities.Voucher{}, ErrVoucherNotFound
	}
	return updated, nil
}

func (u *VoucherUseCase) Redeem(ctx context.Context, code string, ident entities.Identity) (entities.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Voucher{}, ErrInvalidVoucherCode
	}
	if ident.IsZero() {
		return entities.Voucher{}, ErrMissingIdentity
	}

	v, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Voucher{}, err
	}
	if v.Code == "" {
		return entities.Voucher{}, ErrVoucherNotFound
	}
	if v.Assigned() && !v.AssignedMatches(ident) {
		return entities.Voucher{}, ErrVoucherForbidden
	}
	if v.Used {
		return entities.Voucher{}, ErrVoucherUsed
	}

	assign := !v.Assigned()
	if assign && ident.Email != "" {
		ident.Phone = ""
	}
	updated, err := u.repo.Redeem(ctx, code, ident, assign, time.Now().UTC())
	if err != nil {
		return entities.Voucher{}, err
	}
	if updated.Code == "" {
		// Check-and-set failed: a concurrent redemption got there first.
		return entities.Voucher{}, ErrVoucherUsed
	}
	metrics.VouchersRedeemedTotal.Inc()
	if u.events != nil {
		_ = u.events.Publish(ctx, "voucher_redeemed", code, updated)
	}
	return updated, nil
}

func (u *VoucherUseCase) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrInvalidVoucherCode
	}
	deleted, err := u.repo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVoucherNotFound
	}
	return nil
}
