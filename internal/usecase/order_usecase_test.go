package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"repairhub/internal/domain/entities"
	mock_interfaces "repairhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubCustomerDirectory stands in for ICustomerUseCase, which cannot be
// mocked from this package without an import cycle through the generated
// mocks.
type stubCustomerDirectory struct {
	upserts []entities.Customer
	err     error
}

func (s *stubCustomerDirectory) Upsert(_ context.Context, in entities.Customer) (entities.Customer, error) {
	s.upserts = append(s.upserts, in)
	return in, s.err
}

func (s *stubCustomerDirectory) List(context.Context) ([]entities.Customer, error) { return nil, nil }
func (s *stubCustomerDirectory) GetByID(context.Context, string) (entities.Customer, error) {
	return entities.Customer{}, nil
}
func (s *stubCustomerDirectory) Update(_ context.Context, _ string, in entities.Customer) (entities.Customer, error) {
	return in, nil
}
func (s *stubCustomerDirectory) Delete(context.Context, string) error { return nil }

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("success with customer upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		dir := &stubCustomerDirectory{}
		uc := NewOrderUseCase(repo, dir, nil, nil, true)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected pending, got %s", o.Status)
				}
				if o.Audit == nil || len(o.Audit) != 0 {
					t.Fatalf("expected empty audit trail, got %+v", o.Audit)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), OrderDraft{
			Items:    []entities.OrderItem{{ProductID: "p-1", Name: "Widget", Price: 9.5, Qty: 2}},
			Total:    19,
			Customer: entities.CustomerInfo{FirstName: "Ana", Email: "ana@example.com"},
			Notes:    "  leave at door  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notes != "leave at door" {
			t.Fatalf("expected trimmed notes, got %q", res.Notes)
		}
		if len(dir.upserts) != 1 || dir.upserts[0].Email != "ana@example.com" {
			t.Fatalf("expected customer upsert, got %+v", dir.upserts)
		}
	})

	t.Run("no upsert without identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		dir := &stubCustomerDirectory{}
		uc := NewOrderUseCase(repo, dir, nil, nil, true)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		if _, err := uc.Create(context.Background(), OrderDraft{Total: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dir.upserts) != 0 {
			t.Fatalf("expected no upsert, got %+v", dir.upserts)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.Create(context.Background(), OrderDraft{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("upsert failure fails the create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		dir := &stubCustomerDirectory{err: errors.New("directory down")}
		uc := NewOrderUseCase(repo, dir, nil, nil, true)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		_, err := uc.Create(context.Background(), OrderDraft{
			Customer: entities.CustomerInfo{Email: "ana@example.com"},
		})
		if err == nil || err.Error() != "directory down" {
			t.Fatalf("expected directory error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, true)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := &stubOrderCache{values: map[string]entities.Order{"id-1": {ID: "id-1"}}}
		uc := NewOrderUseCase(repo, nil, nil, cache, true)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := &stubOrderCache{values: map[string]entities.Order{}}
		uc := NewOrderUseCase(repo, nil, nil, cache, true)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1"}, nil)

		if _, err := uc.GetByID(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := cache.values["id-1"]; !ok {
			t.Fatalf("expected cache fill")
		}
	})
}

type stubOrderCache struct {
	values map[string]entities.Order
}

func (s *stubOrderCache) Get(key string) (entities.Order, bool) {
	v, ok := s.values[key]
	return v, ok
}
func (s *stubOrderCache) Set(key string, value entities.Order) { s.values[key] = value }
func (s *stubOrderCache) Delete(key string)                    { delete(s.values, key) }

func TestOrderUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, true)
		_, err := uc.SetStatus(context.Background(), "id-1", entities.OrderStatus("bogus"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)
		current := entities.Order{ID: "id-1", Status: entities.OrderStatusShipped}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(current, nil)

		res, err := uc.SetStatus(context.Background(), "id-1", entities.OrderStatusShipped)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Audit) != 0 {
			t.Fatalf("expected untouched audit trail, got %+v", res.Audit)
		}
	})

	t.Run("appends one audit entry with the transition note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)
		current := entities.Order{ID: "id-1", Status: entities.OrderStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(current, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "id-1", entities.OrderStatusPending, entities.OrderStatusShipped, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error) {
				if entry.Action != entities.AuditActionStatusChange {
					t.Fatalf("unexpected action %q", entry.Action)
				}
				if entry.Note != "pending -> shipped" {
					t.Fatalf("unexpected note %q", entry.Note)
				}
				if entry.At.IsZero() {
					t.Fatalf("expected entry timestamp")
				}
				return entities.Order{ID: id, Status: to, Audit: []entities.AuditEntry{entry}}, nil
			},
		)

		res, err := uc.SetStatus(context.Background(), "id-1", entities.OrderStatusShipped)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Audit) != 1 {
			t.Fatalf("expected a single audit entry, got %d", len(res.Audit))
		}
	})

	t.Run("retries a lost race and succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)

		first := entities.Order{ID: "id-1", Status: entities.OrderStatusPending}
		second := entities.Order{ID: "id-1", Status: entities.OrderStatusPaid}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(first, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "id-1", entities.OrderStatusPending, entities.OrderStatusShipped, gomock.Any()).
				Return(entities.Order{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(second, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "id-1", entities.OrderStatusPaid, entities.OrderStatusShipped, gomock.Any()).
				Return(entities.Order{ID: "id-1", Status: entities.OrderStatusShipped}, nil),
		)

		res, err := uc.SetStatus(context.Background(), "id-1", entities.OrderStatusShipped)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusShipped {
			t.Fatalf("expected shipped, got %s", res.Status)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)

		current := entities.Order{ID: "id-1", Status: entities.OrderStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(current, nil).Times(statusUpdateAttempts)
		repo.EXPECT().UpdateStatus(gomock.Any(), "id-1", entities.OrderStatusPending, entities.OrderStatusShipped, gomock.Any()).
			Return(entities.Order{}, nil).Times(statusUpdateAttempts)

		_, err := uc.SetStatus(context.Background(), "id-1", entities.OrderStatusShipped)
		if !errors.Is(err, ErrOrderStatusConflict) {
			t.Fatalf("expected ErrOrderStatusConflict, got %v", err)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	t.Run("notes only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().SetNotes(gomock.Any(), "id-1", "fragile", gomock.AssignableToTypeOf(time.Time{})).
			Return(entities.Order{ID: "id-1", Notes: "fragile"}, nil)

		notes := "  fragile  "
		res, err := uc.Update(context.Background(), "id-1", OrderPatch{Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Notes != "fragile" {
			t.Fatalf("unexpected notes %q", res.Notes)
		}
	})

	t.Run("status delegates to SetStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)

		current := entities.Order{ID: "id-1", Status: entities.OrderStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(current, nil).Times(2)
		repo.EXPECT().UpdateStatus(gomock.Any(), "id-1", entities.OrderStatusPending, entities.OrderStatusPaid, gomock.Any()).
			Return(entities.Order{ID: "id-1", Status: entities.OrderStatusPaid}, nil)

		status := entities.OrderStatusPaid
		res, err := uc.Update(context.Background(), "id-1", OrderPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusPaid {
			t.Fatalf("expected paid, got %s", res.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{}, nil)

		_, err := uc.Update(context.Background(), "id-1", OrderPatch{})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_CancelAndRefund(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *OrderUseCase, ctx context.Context, id, note string) (entities.Order, error)
		status entities.OrderStatus
		action string
	}{
		{name: "cancel", call: (*OrderUseCase).Cancel, status: entities.OrderStatusCancelled, action: entities.AuditActionCancel},
		{name: "refund", call: (*OrderUseCase).Refund, status: entities.OrderStatusRefunded, action: entities.AuditActionRefund},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, nil, nil, true)

			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1", Status: entities.OrderStatusPaid}, nil)
			repo.EXPECT().ForceStatus(gomock.Any(), "id-1", tc.status, gomock.Any()).DoAndReturn(
				func(_ context.Context, id string, to entities.OrderStatus, entry entities.AuditEntry) (entities.Order, error) {
					if entry.Action != tc.action {
						t.Fatalf("unexpected action %q", entry.Action)
					}
					if entry.Note != "customer request" {
						t.Fatalf("unexpected note %q", entry.Note)
					}
					return entities.Order{ID: id, Status: to}, nil
				},
			)

			res, err := tc.call(uc, context.Background(), "id-1", " customer request ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, res.Status)
			}
		})

		t.Run(tc.name+" overrides a terminal status when allowed", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, nil, nil, true)

			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1", Status: entities.OrderStatusCompleted}, nil)
			repo.EXPECT().ForceStatus(gomock.Any(), "id-1", tc.status, gomock.Any()).
				Return(entities.Order{ID: "id-1", Status: tc.status}, nil)

			if _, err := tc.call(uc, context.Background(), "id-1", ""); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})

		t.Run(tc.name+" rejects a terminal status when disallowed", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, nil, nil, false)

			repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1", Status: entities.OrderStatusCompleted}, nil)

			_, err := tc.call(uc, context.Background(), "id-1", "")
			if !errors.Is(err, ErrOrderTerminal) {
				t.Fatalf("expected ErrOrderTerminal, got %v", err)
			}
		})
	}
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, true)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, true)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "id-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success clears the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := &stubOrderCache{values: map[string]entities.Order{"id-1": {ID: "id-1"}}}
		uc := NewOrderUseCase(repo, nil, nil, cache, true)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(true, nil)

		if err := uc.Delete(context.Background(), " id-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := cache.values["id-1"]; ok {
			t.Fatalf("expected cache invalidation")
		}
	})
}

func TestOrderUseCase_Create_TrimsNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil, nil, true)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if strings.TrimSpace(o.Notes) != o.Notes {
				t.Fatalf("expected trimmed notes, got %q", o.Notes)
			}
			return o, nil
		},
	)

	if _, err := uc.Create(context.Background(), OrderDraft{Notes: "\tgift wrap \n"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
