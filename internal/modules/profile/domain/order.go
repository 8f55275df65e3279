package domain

import "time"

// OrderStatus tracks fulfillment. Delivered and cancelled are terminal.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderItem is a purchased line, snapshotted from the cart at checkout so
// later price changes never rewrite history.
type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is a completed checkout.
type Order struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId"`
	Items             []*OrderItem `json:"items"`
	Total             float64      `json:"total"`
	Status            OrderStatus  `json:"status"`
	ShippingAddress   Address      `json:"shippingAddress"`
	PaymentMethod     string       `json:"paymentMethod"`
	OrderDate         time.Time    `json:"orderDate"`
	EstimatedDelivery *time.Time   `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string       `json:"trackingNumber,omitempty"`
}
