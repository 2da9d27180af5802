package interfaces

import (
	"context"

	"repairhub/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for the customer
// directory.

type ICustomerRepository interface {
	Put(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByIdentity(ctx context.Context, ident entities.Identity) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
