// Package notify produces broadcast messages. There is no per-recipient
// targeting: the single append-only log stands in for per-user push and
// every viewer sees the same feed.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/store"
)

type Notifier struct {
	store *store.Store
}

func New(s *store.Store) *Notifier {
	return &Notifier{store: s}
}

// Broadcast appends a free-text message to the head of the log.
func (n *Notifier) Broadcast(message string) models.Notification {
	notif := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	n.store.PrependNotification(notif)
	return notif
}

// PromoCreated announces a new or changed discount on a product.
func (n *Notifier) PromoCreated(productName string, discount float64) models.Notification {
	return n.Broadcast(fmt.Sprintf("New offer! %.0f%% off %s. Don't miss out!", discount, productName))
}

// OrderStatusChanged announces an order moving to a new status, using the
// short order id customers see in their receipts.
func (n *Notifier) OrderStatusChanged(order *models.Order, status models.OrderStatus) models.Notification {
	return n.Broadcast(fmt.Sprintf("Order #%s update: your order is now %q", order.ShortID(), status))
}

// Latest returns the notification feed, newest first.
func (n *Notifier) Latest() []models.Notification {
	return n.store.Notifications()
}
