package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_EdgeOwner(t *testing.T) {
	testCases := []struct {
		name      string
		from, to  entities.OrderStatus
		wantOwner entities.EdgeOwner
		wantOK    bool
	}{
		{"restaurant confirms", entities.StatusPending, entities.StatusConfirmed, entities.OwnerRestaurant, true},
		{"restaurant prepares", entities.StatusConfirmed, entities.StatusPreparing, entities.OwnerRestaurant, true},
		{"restaurant marks ready", entities.StatusPreparing, entities.StatusReady, entities.OwnerRestaurant, true},
		{"restaurant declines", entities.StatusPending, entities.StatusRejected, entities.OwnerRestaurant, true},
		{"claim ready order", entities.StatusReady, entities.StatusAssigned, entities.OwnerDispatch, true},
		{"claim confirmed order", entities.StatusConfirmed, entities.StatusAssigned, entities.OwnerDispatch, true},
		{"assignment rejected", entities.StatusAssigned, entities.StatusReady, entities.OwnerDispatch, true},
		{"pickup", entities.StatusAssigned, entities.StatusPickedUp, entities.OwnerDispatch, true},
		{"deliver", entities.StatusPickedUp, entities.StatusDelivered, entities.OwnerDispatch, true},
		{"cancel assigned", entities.StatusAssigned, entities.StatusCancelled, entities.OwnerCanceller, true},
		{"skip preparing", entities.StatusPending, entities.StatusReady, 0, false},
		{"skip pickup", entities.StatusAssigned, entities.StatusDelivered, 0, false},
		{"cancel picked up", entities.StatusPickedUp, entities.StatusCancelled, 0, false},
		{"move backwards", entities.StatusReady, entities.StatusPreparing, 0, false},
		{"leave delivered", entities.StatusDelivered, entities.StatusPending, 0, false},
		{"leave cancelled", entities.StatusCancelled, entities.StatusConfirmed, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, ok := tc.from.EdgeOwner(tc.to)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOwner, owner)
		})
	}
}

func TestOrderStatus_TerminalStatesHaveNoEdges(t *testing.T) {
	all := []entities.OrderStatus{
		entities.StatusPending, entities.StatusConfirmed, entities.StatusPreparing, entities.StatusReady,
		entities.StatusAssigned, entities.StatusPickedUp, entities.StatusDelivered, entities.StatusCancelled,
		entities.StatusRejected,
	}
	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			assert.Falsef(t, from.CanTransition(to), "%s -> %s must be rejected", from, to)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	st, err := entities.ParseOrderStatus("on_way")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPickedUp, st)

	st, err = entities.ParseOrderStatus(" Ready ")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReady, st)

	_, err = entities.ParseOrderStatus("teleported")
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestOrder_CheckTotals(t *testing.T) {
	ok := entities.Order{Subtotal: 100, DeliveryFee: 15, Discount: 10, Total: 105}
	assert.NoError(t, ok.CheckTotals())

	wrongTotal := entities.Order{Subtotal: 100, DeliveryFee: 15, Discount: 10, Total: 115}
	assert.Error(t, wrongTotal.CheckTotals())

	tooMuchDiscount := entities.Order{Subtotal: 10, DeliveryFee: 5, Discount: 20, Total: 0}
	assert.Error(t, tooMuchDiscount.CheckTotals())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:     "o-1",
		Status: entities.StatusReady,
		Items:  []entities.LineItem{{ProductID: "p1", Name: "Plov", UnitPrice: 50, Quantity: 2}},
		DeliveryAddress: entities.Address{
			Text: "Abay 10", City: "Almaty", Coordinates: &entities.Coordinates{Lat: 43.2, Lng: 76.9},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Items, got.Items)
	assert.Equal(t, *order.DeliveryAddress.Coordinates, *got.DeliveryAddress.Coordinates)
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))

	assert.ErrorIs(t, got.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
}

func TestPromo_Applicable(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	minOrder := 50.0
	restaurant := "r-1"

	testCases := []struct {
		name    string
		promo   entities.Promo
		wantErr bool
	}{
		{"no limits", entities.Promo{Code: "A"}, false},
		{"expired", entities.Promo{Code: "B", ExpiresAt: &expired}, true},
		{"below minimum", entities.Promo{Code: "C", MinOrder: ptr(200.0)}, true},
		{"minimum reached", entities.Promo{Code: "D", MinOrder: &minOrder}, false},
		{"other restaurant", entities.Promo{Code: "E", RestaurantID: ptr("r-2")}, true},
		{"same restaurant", entities.Promo{Code: "F", RestaurantID: &restaurant}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.promo.Applicable(100, "r-1", now)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestActor_OwnsOrder(t *testing.T) {
	order := entities.Order{CustomerID: "c-1", RestaurantID: "r-1"}

	assert.True(t, entities.Actor{ID: "c-1", Role: entities.RoleCustomer}.OwnsOrder(order))
	assert.False(t, entities.Actor{ID: "c-2", Role: entities.RoleCustomer}.OwnsOrder(order))
	assert.True(t, entities.Actor{ID: "u", Role: entities.RoleRestaurant, RestaurantID: "r-1"}.OwnsOrder(order))
	assert.False(t, entities.Actor{ID: "u", Role: entities.RoleRestaurant}.OwnsOrder(order))
	assert.False(t, entities.Actor{ID: "c-1", Role: entities.RoleDriver}.OwnsOrder(order))
	assert.True(t, entities.Actor{ID: "root", Role: entities.RoleAdmin}.OwnsOrder(order))
}

func ptr[T any](v T) *T { return &v }
