package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// ParseOrderStatus maps a raw string to a known status. Membership is
// validated, transitions are not: an order may move between any two statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusShipped:
		return OrderStatusShipped, true
	case OrderStatusDelivered:
		return OrderStatusDelivered, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	default:
		return "", false
	}
}

type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a checkout submission recorded as-is: items and total are the
// caller's snapshot, not re-priced against the catalog.
type Order struct {
	ID              string          `json:"id"`
	Items           []CartItem      `json:"items"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
