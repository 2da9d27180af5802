package usecase

import (
	"context"
	"errors"
	"testing"

	"repairhub/internal/domain/entities"
	mock_interfaces "repairhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Upsert(t *testing.T) {
	t.Run("missing identity", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Upsert(context.Background(), entities.Customer{FirstName: "Ana"})
		if !errors.Is(err, ErrMissingIdentity) {
			t.Fatalf("expected ErrMissingIdentity, got %v", err)
		}
	})

	t.Run("creates a new record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		ident := entities.Identity{Email: "ana@example.com"}
		repo.EXPECT().GetByIdentity(gomock.Any(), ident).Return(entities.Customer{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.Email != "ana@example.com" {
					t.Fatalf("expected normalized email, got %q", c.Email)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.Upsert(context.Background(), entities.Customer{
			FirstName: "Ana",
			Email:     "  ANA@Example.com ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected id")
		}
	})

	t.Run("merges into an existing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		existing := entities.Customer{
			ID:        "cust-1",
			FirstName: "Ana",
			Email:     "ana@example.com",
			Address:   "Old street 1",
		}
		repo.EXPECT().GetByIdentity(gomock.Any(), entities.Identity{Email: "ana@example.com"}).
			Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID != "cust-1" {
					t.Fatalf("expected existing id kept, got %q", c.ID)
				}
				if c.Address != "New street 2" {
					t.Fatalf("expected incoming address to win, got %q", c.Address)
				}
				if c.FirstName != "Ana" {
					t.Fatalf("expected retained first name, got %q", c.FirstName)
				}
				return c, nil
			},
		)

		_, err := uc.Upsert(context.Background(), entities.Customer{
			Email:   "ana@example.com",
			Address: "New street 2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("phone only identity is enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByIdentity(gomock.Any(), entities.Identity{Phone: "555-0101"}).
			Return(entities.Customer{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		if _, err := uc.Upsert(context.Background(), entities.Customer{Phone: " 555-0101 "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		res, err := uc.GetByID(context.Background(), " cust-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "cust-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", entities.Customer{FirstName: "Ana"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("merge keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		existing := entities.Customer{ID: "cust-1", FirstName: "Ana", Email: "ana@example.com"}
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Email != "ana@example.com" {
					t.Fatalf("expected retained email, got %q", c.Email)
				}
				if c.LastName != "Silva" {
					t.Fatalf("expected updated last name, got %q", c.LastName)
				}
				return c, nil
			},
		)

		_, err := uc.Update(context.Background(), "cust-1", entities.Customer{LastName: "Silva"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "cust-1"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "cust-1").Return(true, nil)

		if err := uc.Delete(context.Background(), " cust-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
