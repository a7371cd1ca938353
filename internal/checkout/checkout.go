// Package checkout turns carts into orders and drives each order through
// its delivery states.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/pricing"
	"github.com/malakstore/souq/internal/session"
	"github.com/malakstore/souq/internal/store"
)

var (
	// ErrMissingProfile blocks order creation until the customer completes
	// name, phone and location. The caller redirects to profile entry.
	ErrMissingProfile = errors.New("delivery profile incomplete")

	ErrEmptyCart = errors.New("cart is empty")

	// ErrSameStatus rejects a transition to the order's current status at
	// the interface level; it is a no-op, not a failure.
	ErrSameStatus = errors.New("order already in that status")

	// ErrOrderDelivered rejects transitions out of the terminal state.
	ErrOrderDelivered = errors.New("order already delivered")

	ErrUnknownStatus = errors.New("unknown order status")
)

type Service struct {
	store    *store.Store
	notifier *notify.Notifier
}

func New(s *store.Store, n *notify.Notifier) *Service {
	return &Service{store: s, notifier: n}
}

// PlaceOrder snapshots the session's cart into a new order. The order's
// items and total are captured once here and never recomputed, so later
// catalog changes cannot alter it. On any error nothing is written and the
// cart is left untouched; on success exactly one order is appended and the
// cart is cleared.
func (s *Service) PlaceOrder(sess *session.Session) (models.Order, error) {
	profile := sess.ResolveProfile()
	if !profile.Complete() {
		return models.Order{}, ErrMissingProfile
	}

	items := sess.Cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		total += pricing.LineTotal(item)
	}

	order := models.Order{
		ID:               uuid.NewString(),
		UserID:           sess.UserID(),
		CustomerName:     profile.Name,
		CustomerPhone:    profile.Phone,
		CustomerLocation: profile.Location,
		Items:            items,
		Total:            total,
		Status:           models.OrderStatusPreparing,
		CreatedAt:        time.Now(),
	}

	s.store.PrependOrder(order)
	sess.Cart.Clear()
	return order, nil
}

// ValidTransition reports whether an order may move from one status to
// another. Any distinct target is allowed except leaving DELIVERED, which
// is terminal; no forward-only progression is enforced.
func ValidTransition(from, to models.OrderStatus) error {
	if !models.ValidOrderStatus(to) {
		return ErrUnknownStatus
	}
	if from == to {
		return ErrSameStatus
	}
	if from == models.OrderStatusDelivered {
		return ErrOrderDelivered
	}
	return nil
}

// UpdateStatus applies a staff-initiated status change. Every successful
// transition emits exactly one broadcast notification carrying the order's
// short id and the new status.
func (s *Service) UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	order, err := s.store.Order(orderID)
	if err != nil {
		return models.Order{}, err
	}
	if err := ValidTransition(order.Status, status); err != nil {
		return models.Order{}, err
	}
	if err := s.store.SetOrderStatus(orderID, status); err != nil {
		return models.Order{}, err
	}

	order.Status = status
	s.notifier.OrderStatusChanged(&order, status)
	return order, nil
}

// Summary aggregates the dashboard numbers shown to staff.
type Summary struct {
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int     `json:"order_count"`
	OpenOrders   int     `json:"open_orders"`
}

// Summarize computes revenue and order counts across all orders. Open
// orders are those still PREPARING or ON_WAY.
func (s *Service) Summarize() Summary {
	var sum Summary
	for _, o := range s.store.Orders() {
		sum.TotalRevenue += o.Total
		sum.OrderCount++
		if o.Status == models.OrderStatusPreparing || o.Status == models.OrderStatusOnWay {
			sum.OpenOrders++
		}
	}
	return sum
}
