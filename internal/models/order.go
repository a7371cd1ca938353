package models

import "time"

type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusOnWay     OrderStatus = "ON_WAY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusOnWay, OrderStatusDelivered:
		return true
	}
	return false
}

// GuestUserID marks orders placed without an authenticated account. All
// guest sessions share this id, so guest order listings are shared too.
const GuestUserID = "guest"

// Order is a point-in-time financial record. Items and Total are captured
// once at creation and never recomputed, even if catalog prices change.
type Order struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id"`
	CustomerName     string      `json:"customer_name"`
	CustomerPhone    string      `json:"customer_phone"`
	CustomerLocation string      `json:"customer_location"`
	Items            []CartItem  `json:"items"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ShortID returns the order id prefix used in customer-facing messages.
func (o *Order) ShortID() string {
	if len(o.ID) <= 4 {
		return o.ID
	}
	return o.ID[:4]
}
