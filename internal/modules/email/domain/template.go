package domain

// Template is a named email body with its variable placeholders. Only the
// text rendition is kept; HTML is a presentation concern.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	Type        Type     `json:"type"`
	TextContent string   `json:"textContent"`
	Variables   []string `json:"variables"`
}

// SeedTemplates returns the built-in template set.
func SeedTemplates() []*Template {
	return []*Template{
		{
			ID:      "order-confirmation",
			Name:    "Order Confirmation",
			Subject: "Order Confirmed - #{{orderNumber}}",
			Type:    TypeOrder,
			TextContent: `Order Confirmed - #{{orderNumber}}

Hi {{customerName}},

We've received your order and it's being processed. Here are the details:

Order #{{orderNumber}}
Order Date: {{orderDate}}
Total: ₱{{orderTotal}}
Payment Method: {{paymentMethod}}

We'll send you another email when your order ships. You can track your order at: {{trackingUrl}}

Need help? Contact us at support@lnsc.ph

LNSC - Premium Laptops for Mindanao`,
			Variables: []string{"customerName", "orderNumber", "orderDate", "orderTotal", "paymentMethod", "items", "trackingUrl"},
		},
		{
			ID:      "order-shipped",
			Name:    "Order Shipped",
			Subject: "Your order is on the way! - #{{orderNumber}}",
			Type:    TypeOrder,
			TextContent: `Your order is on the way! - #{{orderNumber}}

Hi {{customerName}},

Great news! Your order has been shipped and is on its way to you.

Shipping Details:
Tracking Number: {{trackingNumber}}
Carrier: {{carrier}}
Estimated Delivery: {{estimatedDelivery}}

Track your package: {{trackingUrl}}

Please ensure someone is available to receive the package.

Questions? Contact us at support@lnsc.ph`,
			Variables: []string{"customerName", "orderNumber", "trackingNumber", "carrier", "estimatedDelivery", "trackingUrl"},
		},
		{
			ID:      "review-reminder",
			Name:    "Review Reminder",
			Subject: "How was your {{productName}}? Share your experience",
			Type:    TypeReview,
			TextContent: `How was your {{productName}}? Share your experience

Hi {{customerName}},

We hope you're enjoying your recent purchase! Your feedback helps other customers make informed decisions.

Product: {{productName}}
Purchased on: {{purchaseDate}}

Write a review: {{reviewUrl}}

Don't want review reminders? Update your preferences: {{unsubscribeUrl}}`,
			Variables: []string{"customerName", "productName", "productImage", "purchaseDate", "reviewUrl", "unsubscribeUrl"},
		},
		{
			ID:      "promotional-sale",
			Name:    "Promotional Sale",
			Subject: "{{saleTitle}} - Up to {{discount}}% Off!",
			Type:    TypePromotion,
			TextContent: `{{saleTitle}} - Up to {{discount}}% Off!

Hi {{customerName}},

Don't miss out on incredible savings! Our {{saleTitle}} is here with amazing discounts on premium laptops.

{{discount}}% OFF - {{saleDescription}}

Shop now: {{shopUrl}}

Limited Time: Sale ends {{saleEndDate}}

Don't want promotional emails? Unsubscribe: {{unsubscribeUrl}}`,
			Variables: []string{"customerName", "saleTitle", "discount", "saleDescription", "promoCode", "featuredProducts", "shopUrl", "saleEndDate", "unsubscribeUrl"},
		},
	}
}
