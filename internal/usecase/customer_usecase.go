package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCustomerID  = errors.New("invalid customer id")
	ErrMissingIdentity    = errors.New("email or phone required")
)

// ICustomerUseCase is the customer directory: identity upsert and lookup.
//
// The directory is a collaborator of the order and booking managers; both
// upsert the submitted customer snapshot on creation. Upserts are
// last-write-wins with no conflict detection.

type ICustomerUseCase interface {
	Upsert(ctx context.Context, in entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, id string, in entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Upsert(ctx context.Context, in entities.Customer) (entities.Customer, error) {
	in.Email = entities.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	ident := in.Identity()
	if ident.IsZero() {
		return entities.Customer{}, ErrMissingIdentity
	}

	now := time.Now().UTC()
	existing, err := u.repo.GetByIdentity(ctx, ident)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		merged := existing.Merge(in)
		merged.UpdatedAt = now
		return u.repo.Put(ctx, merged)
	}

	in.ID = uuid.NewString()
	in.CreatedAt = now
	in.UpdatedAt = now
	return u.repo.Put(ctx, in)
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in entities.Customer) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	in.Email = entities.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	merged := existing.Merge(in)
	merged.UpdatedAt = time.Now().UTC()
	return u.repo.Put(ctx, merged)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	return nil
}
