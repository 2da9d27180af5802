package interfaces

import (
	"context"
	"time"

	"repairhub/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// ResolveQuote is the only conditional transition: it succeeds only while
// the stored quote status is still "proposed", so of a concurrent
// accept/decline pair exactly one wins.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context, ident entities.Identity) ([]entities.Booking, error)
	SetStatus(ctx context.Context, id string, status entities.BookingStatus, at time.Time) (entities.Booking, error)
	// ProposeQuote overwrites the quote sub-record and clears any stale
	// accepted timestamp from a prior cycle.
	ProposeQuote(ctx context.Context, id string, amount float64, note string, at time.Time) (entities.Booking, error)
	ResolveQuote(ctx context.Context, id string, to entities.QuoteStatus, at time.Time) (entities.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}
