package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentity(t *testing.T) {
	ident := NewIdentity("  ANA@Example.com ", " 555-0101 ")
	assert.Equal(t, "ana@example.com", ident.Email)
	assert.Equal(t, "555-0101", ident.Phone)
}

func TestIdentity_Key(t *testing.T) {
	assert.Equal(t, "ana@example.com", Identity{Email: "ana@example.com", Phone: "555-0101"}.Key())
	assert.Equal(t, "555-0101", Identity{Phone: "555-0101"}.Key())
	assert.Equal(t, "", Identity{}.Key())
}

func TestIdentity_Matches(t *testing.T) {
	cases := []struct {
		name     string
		record   Identity
		supplied Identity
		want     bool
	}{
		{"both emails equal", Identity{Email: "a@x.com"}, Identity{Email: "a@x.com"}, true},
		{"emails differ", Identity{Email: "a@x.com"}, Identity{Email: "b@x.com"}, false},
		{"record has no identity", Identity{}, Identity{Email: "a@x.com"}, true},
		{"supplied phone only, record email only", Identity{Email: "a@x.com"}, Identity{Phone: "555"}, true},
		{"phones differ", Identity{Phone: "555"}, Identity{Phone: "556"}, false},
		{"email matches, phone differs", Identity{Email: "a@x.com", Phone: "555"}, Identity{Email: "a@x.com", Phone: "556"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.record.Matches(tc.supplied))
		})
	}
}

func TestVoucher_AssignedMatches(t *testing.T) {
	t.Run("unassigned matches anything", func(t *testing.T) {
		v := Voucher{Code: "SAVE10"}
		assert.False(t, v.Assigned())
		assert.True(t, v.AssignedMatches(Identity{Email: "a@x.com"}))
	})

	t.Run("assigned email requires the same email", func(t *testing.T) {
		v := Voucher{Code: "SAVE10", AssignedTo: Identity{Email: "a@x.com"}}
		assert.True(t, v.AssignedMatches(Identity{Email: "a@x.com"}))
		assert.False(t, v.AssignedMatches(Identity{Email: "b@x.com"}))
		// A phone alone is not enough, unlike CustomerInfo matching.
		assert.False(t, v.AssignedMatches(Identity{Phone: "555"}))
	})

	t.Run("assigned phone requires the same phone", func(t *testing.T) {
		v := Voucher{Code: "SAVE10", AssignedTo: Identity{Phone: "555"}}
		assert.True(t, v.AssignedMatches(Identity{Phone: "555"}))
		assert.False(t, v.AssignedMatches(Identity{Email: "a@x.com"}))
	})
}

func TestOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("bogus").Valid())

	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.True(t, OrderStatusRefunded.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("bogus").Valid())
}

func TestCustomer_Merge(t *testing.T) {
	existing := Customer{
		ID:        "cust-1",
		FirstName: "Ana",
		Email:     "ana@example.com",
		Address:   "Old street 1",
	}
	merged := existing.Merge(Customer{LastName: "Silva", Address: "New street 2"})

	assert.Equal(t, "cust-1", merged.ID)
	assert.Equal(t, "Ana", merged.FirstName)
	assert.Equal(t, "Silva", merged.LastName)
	assert.Equal(t, "ana@example.com", merged.Email)
	assert.Equal(t, "New street 2", merged.Address)
}
