package domain

// Preferences is the per-user email opt-in record. OrderConfirmation and
// SystemNotifications are locked on by policy; updates to them are ignored.
type Preferences struct {
	UserID                 string `json:"userId"`
	OrderConfirmation      bool   `json:"orderConfirmation"`
	OrderShipped           bool   `json:"orderShipped"`
	OrderDelivered         bool   `json:"orderDelivered"`
	ReviewReminder         bool   `json:"reviewReminder"`
	ReviewResponse         bool   `json:"reviewResponse"`
	PromotionalEmails      bool   `json:"promotionalEmails"`
	WeeklyNewsletter       bool   `json:"weeklyNewsletter"`
	ProductRecommendations bool   `json:"productRecommendations"`
	PriceDropAlerts        bool   `json:"priceDropAlerts"`
	StockAlerts            bool   `json:"stockAlerts"`
	SystemNotifications    bool   `json:"systemNotifications"`
}

// DefaultPreferences returns the opt-in record a user starts with.
func DefaultPreferences() *Preferences {
	return &Preferences{
		UserID:                 "current-user",
		OrderConfirmation:      true,
		OrderShipped:           true,
		OrderDelivered:         true,
		ReviewReminder:         true,
		ReviewResponse:         false,
		PromotionalEmails:      true,
		WeeklyNewsletter:       false,
		ProductRecommendations: true,
		PriceDropAlerts:        true,
		StockAlerts:            true,
		SystemNotifications:    true,
	}
}

// Allows reports whether a notification of the given type may be sent. A
// type passes when at least one of its sub-preferences is enabled.
func (p *Preferences) Allows(t Type) bool {
	switch t {
	case TypeOrder:
		return p.OrderConfirmation || p.OrderShipped || p.OrderDelivered
	case TypeReview:
		return p.ReviewReminder || p.ReviewResponse
	case TypePromotion:
		return p.PromotionalEmails || p.WeeklyNewsletter || p.ProductRecommendations
	case TypeSystem:
		return p.SystemNotifications
	default:
		return true
	}
}

// EnforcePolicy re-asserts the locked flags after an update.
func (p *Preferences) EnforcePolicy() {
	p.OrderConfirmation = true
	p.SystemNotifications = true
}
