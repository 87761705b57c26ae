package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
)

func testItems() []models.CartItem {
	return []models.CartItem{
		{CookieID: "1", Name: "Cookie Chocolat Noir", Price: 3.50, Quantity: 2},
	}
}

func TestPlaceRecordsOrderAsIs(t *testing.T) {
	s := NewOrderStore()

	order := s.Place(testItems(), 7.00, models.ShippingAddress{City: "Paris", Country: "FR"})

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	// Recorded as submitted, not re-priced
	assert.InDelta(t, 7.00, order.Total, 0.001)

	got, err := s.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestGetUnknownOrder(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get("9999")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListNewestFirst(t *testing.T) {
	s := NewOrderStore()

	first := s.Place(testItems(), 7.00, models.ShippingAddress{})
	second := s.Place(testItems(), 3.50, models.ShippingAddress{})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSetStatus(t *testing.T) {
	s := NewOrderStore()
	order := s.Place(testItems(), 7.00, models.ShippingAddress{})

	updated, err := s.SetStatus(order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	// Transitions are unconstrained within the known set
	updated, err = s.SetStatus(order.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestSetStatusValidatesMembership(t *testing.T) {
	s := NewOrderStore()
	order := s.Place(testItems(), 7.00, models.ShippingAddress{})

	_, err := s.SetStatus(order.ID, "teleported")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// Status unchanged after the rejected update
	got, err := s.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	s := NewOrderStore()

	_, err := s.SetStatus("9999", "shipped")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
