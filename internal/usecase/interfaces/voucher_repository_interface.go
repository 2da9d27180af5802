package interfaces

import (
	"context"
	"time"

	"repairhub/internal/domain/entities"
)

// IVoucherRepository abstracts DynamoDB persistence for Voucher.
//
// Create and Redeem are conditional writes: Create fails its condition when
// the code already exists, Redeem when the voucher was already used. Both
// return a zero-value Voucher with a nil error in that case.

type IVoucherRepository interface {
	Create(ctx context.Context, v entities.Voucher) (entities.Voucher, error)
	GetByCode(ctx context.Context, code string) (entities.Voucher, error)
	List(ctx context.Context) ([]entities.Voucher, error)
	ListByIdentity(ctx context.Context, ident entities.Identity) ([]entities.Voucher, error)
	Assign(ctx context.Context, code string, ident entities.Identity, at time.Time) (entities.Voucher, error)
	// Redeem marks the voucher used in a single check-and-set write. When
	// assign is set the redeeming identity is recorded as the assignment.
	Redeem(ctx context.Context, code string, ident entities.Identity, assign bool, at time.Time) (entities.Voucher, error)
	Delete(ctx context.Context, code string) (bool, error)
}
