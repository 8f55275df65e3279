package domain

import (
	"fmt"
	"time"
)

// DemoOrders fabricates a small purchase history for accounts that have
// never ordered, so the orders screen is not empty on first login.
func DemoOrders(userID string, now time.Time) []*Order {
	delivery := now.Add(2 * 24 * time.Hour)
	return []*Order{
		{
			ID:     fmt.Sprintf("order_%d_1", now.UnixMilli()),
			UserID: userID,
			Items: []*OrderItem{
				{ProductID: "1", Name: `MacBook Pro 14" M3`, Price: 89999, Quantity: 1, Image: "/placeholder.svg?height=100&width=100"},
			},
			Total:           89999,
			Status:          OrderDelivered,
			ShippingAddress: demoAddress(),
			PaymentMethod:   "Credit Card",
			OrderDate:       now.Add(-7 * 24 * time.Hour),
			TrackingNumber:  "LNSC123456789",
		},
		{
			ID:     fmt.Sprintf("order_%d_2", now.UnixMilli()),
			UserID: userID,
			Items: []*OrderItem{
				{ProductID: "2", Name: "Dell XPS 13", Price: 65999, Quantity: 1, Image: "/placeholder.svg?height=100&width=100"},
				{ProductID: "3", Name: "Wireless Mouse", Price: 1299, Quantity: 2, Image: "/placeholder.svg?height=100&width=100"},
			},
			Total:             68597,
			Status:            OrderShipped,
			ShippingAddress:   demoAddress(),
			PaymentMethod:     "PayPal",
			OrderDate:         now.Add(-3 * 24 * time.Hour),
			EstimatedDelivery: &delivery,
			TrackingNumber:    "LNSC987654321",
		},
	}
}

func demoAddress() Address {
	return Address{
		Street:   "123 Main St",
		City:     "Zamboanga City",
		Province: "Zamboanga del Sur",
		ZipCode:  "7000",
		Country:  "Philippines",
	}
}
