package store

import (
	"testing"

	"github.com/malakstore/souq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProduct(t *testing.T) {
	s := New()
	s.UpsertProduct(models.Product{ID: "p1", Name: "Apples", Price: 8.5})
	s.UpsertProduct(models.Product{ID: "p2", Name: "Bananas", Price: 5.5})

	// Replace keeps position and count.
	s.UpsertProduct(models.Product{ID: "p1", Name: "Red Apples", Price: 9.0})

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Red Apples", products[0].Name)

	got, err := s.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Price)
}

func TestProductNotFound(t *testing.T) {
	s := New()
	_, err := s.Product("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProduct("missing"), ErrNotFound)
}

func TestOrdersAreNewestFirst(t *testing.T) {
	s := New()
	s.PrependOrder(models.Order{ID: "first"})
	s.PrependOrder(models.Order{ID: "second"})
	s.PrependOrder(models.Order{ID: "third"})

	orders := s.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrdersByUser(t *testing.T) {
	s := New()
	s.PrependOrder(models.Order{ID: "a", UserID: "u1"})
	s.PrependOrder(models.Order{ID: "b", UserID: "u2"})
	s.PrependOrder(models.Order{ID: "c", UserID: "u1"})

	mine := s.OrdersByUser("u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "c", mine[0].ID)
	assert.Empty(t, s.OrdersByUser("u3"))
}

func TestSetOrderStatus(t *testing.T) {
	s := New()
	s.PrependOrder(models.Order{ID: "o1", Status: models.OrderStatusPreparing})

	require.NoError(t, s.SetOrderStatus("o1", models.OrderStatusOnWay))
	got, err := s.Order("o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOnWay, got.Status)

	assert.ErrorIs(t, s.SetOrderStatus("missing", models.OrderStatusOnWay), ErrNotFound)
}

func TestAdminLookup(t *testing.T) {
	s := New()
	s.AddAdmin(models.User{ID: "a1", Email: "staff@souq.local", Status: models.AdminStatusPending})

	byID, err := s.Admin("a1")
	require.NoError(t, err)
	byEmail, err := s.AdminByEmail("staff@souq.local")
	require.NoError(t, err)
	assert.Equal(t, byID, byEmail)

	require.NoError(t, s.SetAdminStatus("a1", models.AdminStatusAccepted))
	got, _ := s.Admin("a1")
	assert.Equal(t, models.AdminStatusAccepted, got.Status)
}

func TestNotificationsAreNewestFirst(t *testing.T) {
	s := New()
	s.PrependNotification(models.Notification{ID: "n1", Message: "old"})
	s.PrependNotification(models.Notification{ID: "n2", Message: "new"})

	notifications := s.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "new", notifications[0].Message)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := New()
	s.Seed()
	count := len(s.Products())
	require.Greater(t, count, 0)
	for _, p := range s.Products() {
		assert.Equal(t, p.Discount > 0, p.IsOffer)
		assert.True(t, models.ValidCategory(p.Category))
	}

	s.Seed()
	assert.Len(t, s.Products(), count)
}
