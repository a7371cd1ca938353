package checkout

import (
	"testing"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/session"
	"github.com/malakstore/souq/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*Service, *store.Store, *notify.Notifier) {
	st := store.New()
	n := notify.New(st)
	return New(st, n), st, n
}

func sessionWithProfile() *session.Session {
	m := session.NewManager()
	sess := m.Open()
	sess.SetTempProfile(models.Profile{Name: "Sara", Phone: "0501234567", Location: "Al Majaz 3"})
	return sess
}

func fillCart(sess *session.Session) {
	sess.Cart.Add(models.Product{ID: "P", Name: "Apples", Category: models.CategoryFruitsVeg, Price: 10, Discount: 20})
	sess.Cart.Add(models.Product{ID: "P", Name: "Apples", Category: models.CategoryFruitsVeg, Price: 10, Discount: 20})
	sess.Cart.Add(models.Product{ID: "Q", Name: "Soda", Category: models.CategoryDrinks, Price: 5})
}

func TestPlaceOrderMissingProfileIsAtomic(t *testing.T) {
	svc, st, _ := newService()
	m := session.NewManager()
	sess := m.Open()
	fillCart(sess)

	_, err := svc.PlaceOrder(sess)
	assert.ErrorIs(t, err, ErrMissingProfile)

	// Nothing observable changed: no order appended, cart untouched.
	assert.Empty(t, st.Orders())
	assert.Equal(t, 2, sess.Cart.Len())
}

func TestPlaceOrderPartialProfileStillBlocked(t *testing.T) {
	svc, st, _ := newService()
	m := session.NewManager()
	sess := m.Open()
	sess.SetTempProfile(models.Profile{Name: "Sara", Phone: "0501234567"}) // no location
	fillCart(sess)

	_, err := svc.PlaceOrder(sess)
	assert.ErrorIs(t, err, ErrMissingProfile)
	assert.Empty(t, st.Orders())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, st, _ := newService()
	sess := sessionWithProfile()

	_, err := svc.PlaceOrder(sess)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, st.Orders())
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	svc, st, _ := newService()
	sess := sessionWithProfile()
	fillCart(sess)

	order, err := svc.PlaceOrder(sess)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.GuestUserID, order.UserID)
	assert.Equal(t, "Sara", order.CustomerName)
	assert.Equal(t, models.OrderStatusPreparing, order.Status)
	assert.InDelta(t, 21.0, order.Total, 1e-9)
	require.Len(t, order.Items, 2)
	assert.False(t, order.CreatedAt.IsZero())

	// Exactly one order appended, cart emptied.
	require.Len(t, st.Orders(), 1)
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestOrderTotalIsImmutable(t *testing.T) {
	svc, st, _ := newService()

	p := models.Product{ID: "P", Name: "Apples", Category: models.CategoryFruitsVeg, Price: 10, Discount: 20}
	st.UpsertProduct(p)

	sess := sessionWithProfile()
	sess.Cart.Add(p)

	order, err := svc.PlaceOrder(sess)
	require.NoError(t, err)
	originalTotal := order.Total

	// The catalog moving on cannot touch the financial record.
	p.Price = 99
	p.Discount = 0
	st.UpsertProduct(p)

	stored, err := st.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, originalTotal, stored.Total)
	assert.Equal(t, 10.0, stored.Items[0].Price)
}

func TestPlaceOrderUsesUserProfileOverTemp(t *testing.T) {
	svc, _, _ := newService()
	m := session.NewManager()
	sess := m.Open()
	sess.SetTempProfile(models.Profile{Name: "Temp", Phone: "000", Location: "Nowhere"})
	sess.SetUser(&models.User{ID: "u1", Name: "Sara", Phone: "0501234567", Location: "Al Majaz 3", Role: models.RoleCustomer})
	fillCart(sess)

	order, err := svc.PlaceOrder(sess)
	require.NoError(t, err)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, "Sara", order.CustomerName)
	assert.Equal(t, "Al Majaz 3", order.CustomerLocation)
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from models.OrderStatus
		to   models.OrderStatus
		want error
	}{
		{"forward", models.OrderStatusPreparing, models.OrderStatusOnWay, nil},
		{"skip ahead", models.OrderStatusPreparing, models.OrderStatusDelivered, nil},
		{"backwards allowed", models.OrderStatusOnWay, models.OrderStatusPreparing, nil},
		{"same status", models.OrderStatusOnWay, models.OrderStatusOnWay, ErrSameStatus},
		{"delivered is terminal", models.OrderStatusDelivered, models.OrderStatusPreparing, ErrOrderDelivered},
		{"unknown target", models.OrderStatusPreparing, "CANCELLED", ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidTransition(tt.from, tt.to)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestUpdateStatusEmitsExactlyOneNotification(t *testing.T) {
	svc, st, notifier := newService()
	sess := sessionWithProfile()
	fillCart(sess)
	order, err := svc.PlaceOrder(sess)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, models.OrderStatusOnWay)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOnWay, updated.Status)

	feed := notifier.Latest()
	require.Len(t, feed, 1)
	assert.Contains(t, feed[0].Message, order.ShortID())
	assert.Contains(t, feed[0].Message, "ON_WAY")

	// Re-applying the same status is a no-op and emits nothing.
	_, err = svc.UpdateStatus(order.ID, models.OrderStatusOnWay)
	assert.ErrorIs(t, err, ErrSameStatus)
	assert.Len(t, notifier.Latest(), 1)

	stored, _ := st.Order(order.ID)
	assert.Equal(t, models.OrderStatusOnWay, stored.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.UpdateStatus("missing", models.OrderStatusOnWay)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSummarize(t *testing.T) {
	svc, st, _ := newService()
	st.PrependOrder(models.Order{ID: "a", Total: 30, Status: models.OrderStatusPreparing})
	st.PrependOrder(models.Order{ID: "b", Total: 20, Status: models.OrderStatusOnWay})
	st.PrependOrder(models.Order{ID: "c", Total: 50, Status: models.OrderStatusDelivered})

	sum := svc.Summarize()
	assert.InDelta(t, 100.0, sum.TotalRevenue, 1e-9)
	assert.Equal(t, 3, sum.OrderCount)
	assert.Equal(t, 2, sum.OpenOrders)
}
