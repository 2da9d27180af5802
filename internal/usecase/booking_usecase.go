package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"repairhub/internal/domain/entities"
	"repairhub/internal/infrastructure/metrics"
	"repairhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidQuoteAmount   = errors.New("invalid quote amount")
	ErrNoActiveQuote        = errors.New("no active quote")
	ErrQuoteForbidden       = errors.New("identity does not match booking customer")
)

// IBookingUseCase exposes the repair booking lifecycle and the quote
// negotiation protocol between staff and customer.
//
// Quote sub-state machine: none --propose--> proposed --accept--> accepted,
// proposed --decline--> declined. Propose is a staff override valid from any
// state; it overwrites the quote and discards a prior accept/decline
// outcome. Accept and decline require the stored quote to still be
// proposed, enforced with a conditional write so concurrent calls cannot
// both win.

type IBookingUseCase interface {
	Create(ctx context.Context, draft BookingDraft) (entities.Booking, error)
	List(ctx context.Context, ident entities.Identity) ([]entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	SetStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	ProposeQuote(ctx context.Context, id string, amount float64, note string) (entities.Booking, error)
	AcceptQuote(ctx context.Context, id string, ident entities.Identity) (entities.Booking, error)
	DeclineQuote(ctx context.Context, id string, ident entities.Identity) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
}

// BookingDraft is the repair-request submission.
type BookingDraft struct {
	Device         entities.Device
	Issue          entities.Issue
	ServiceOptions entities.ServiceOptions
	Customer       entities.CustomerInfo
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	customers ICustomerUseCase
	events    interfaces.IEventPublisher
	cache     interfaces.IRecordCache[entities.Booking]
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IBookingRepository,
	customers ICustomerUseCase,
	events interfaces.IEventPublisher,
	cache interfaces.IRecordCache[entities.Booking],
) *BookingUseCase {
	return &BookingUseCase{repo: repo, customers: customers, events: events, cache: cache}
}

func (u *BookingUseCase) Create(ctx context.Context, draft BookingDraft) (entities.Booking, error) {
	now := time.Now().UTC()
	b := entities.Booking{
		ID:             uuid.NewString(),
		Device:         draft.Device,
		Issue:          draft.Issue,
		ServiceOptions: draft.ServiceOptions,
		Customer:       draft.Customer,
		Status:         entities.BookingStatusPending,
		QuoteStatus:    entities.QuoteStatusNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}

	if u.customers != nil && !created.Customer.Identity().IsZero() {
		if _, err := u.customers.Upsert(ctx, entities.Customer{
			FirstName: created.Customer.FirstName,
			LastName:  created.Customer.LastName,
			Email:     created.Customer.Email,
			Phone:     created.Customer.Phone,
			Address:   created.Customer.Address,
		}); err != nil {
			return entities.Booking{}, err
		}
	}

	metrics.BookingsCreatedTotal.Inc()
	u.publish(ctx, "booking_created", created.ID, created)
	return created, nil
}

func (u *BookingUseCase) List(ctx context.Context, ident entities.Identity) ([]entities.Booking, error) {
	return u.repo.List(ctx, ident)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if u.cache != nil {
		if b, ok := u.cache.Get(id); ok {
			return b, nil
		}
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if u.cache != nil {
		u.cache.Set(id, b)
	}
	return b, nil
}

func (u *BookingUseCase) SetStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if !status.Valid() {
		return entities.Booking{}, ErrInvalidBookingStatus
	}
	updated, err := u.repo.SetStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.invalidate(id)
	u.publish(ctx, "booking_status_changed", id, updated)
	return updated, nil
}

func (u *BookingUseCase) ProposeQuote(ctx context.Context, id string, amount float64, note string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if amount <= 0 {
		return entities.Booking{}, ErrInvalidQuoteAmount
	}

	updated, err := u.repo.ProposeQuote(ctx, id, amount, strings.TrimSpace(note), time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.invalidate(id)
	metrics.QuotesProposedTotal.Inc()
	u.publish(ctx, "quote_proposed", id, updated)
	return updated, nil
}

func (u *BookingUseCase) AcceptQuote(ctx context.Context, id string, ident entities.Identity) (entities.Booking, error) {
	return u.resolveQuote(ctx, id, ident, entities.QuoteStatusAccepted)
}

func (u *BookingUseCase) DeclineQuote(ctx context.Context, id string, ident entities.Identity) (entities.Booking, error) {
	return u.resolveQuote(ctx, id, ident, entities.QuoteStatusDeclined)
}

func (u *BookingUseCase) resolveQuote(ctx context.Context, id string, ident entities.Identity, to entities.QuoteStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !b.Customer.Identity().Matches(ident) {
		return entities.Booking{}, ErrQuoteForbidden
	}
	if b.QuoteStatus != entities.QuoteStatusProposed {
		return entities.Booking{}, ErrNoActiveQuote
	}

	updated, err := u.repo.ResolveQuote(ctx, id, to, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		// The conditional write lost a race: the quote is no longer proposed.
		return entities.Booking{}, ErrNoActiveQuote
	}
	u.invalidate(id)
	metrics.QuotesResolvedTotal.WithLabelValues(string(to)).Inc()
	u.publish(ctx, "quote_"+string(to), id, updated)
	return updated, nil
}

func (u *BookingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBookingID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	u.invalidate(id)
	return nil
}

func (u *BookingUseCase) invalidate(id string) {
	if u.cache != nil {
		u.cache.Delete(id)
	}
}

func (u *BookingUseCase) publish(ctx context.Context, eventType, id string, payload interface{}) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, eventType, id, payload); err != nil {
		log.Printf("[booking][usecase] publish %s failed for %s: %v", eventType, id, err)
	}
}
