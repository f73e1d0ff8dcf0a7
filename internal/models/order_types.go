package models

import (
	"time"
)

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"  // Placed at checkout
	OrderStatusPreparing OrderStatus = "preparing"  // Being packed
	OrderStatusInTransit OrderStatus = "in_transit" // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered"  // Customer received it
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is the model for the 'orders' table. Items and Address are
// snapshots taken at checkout.
type Order struct {
	ID                string      `json:"id" db:"id"`
	UserID            string      `json:"userId" db:"user_id"`
	Items             []OrderItem `json:"items" db:"items"`
	Address           Address     `json:"address" db:"address"`
	PaymentMethod     string      `json:"paymentMethod" db:"payment_method"`
	Subtotal          float64     `json:"subtotal" db:"subtotal"`
	ShippingFee       float64     `json:"shippingFee" db:"shipping_fee"`
	Total             float64     `json:"total" db:"total"`
	Status            OrderStatus `json:"status" db:"status"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         *time.Time  `json:"updatedAt,omitempty" db:"updated_at"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery" db:"estimated_delivery"`
}

// OrderItem is a line of an order, priced at the time of purchase.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]OrderItem{}, o.Items...)
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
