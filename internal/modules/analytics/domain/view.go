// Package domain contains the product view tracking models.
package domain

import "time"

// View is a single product page view.
type View struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	ViewedAt  time.Time `json:"viewedAt"`
	SessionID string    `json:"sessionId,omitempty"`
	Source    string    `json:"source,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
}

// ViewEntity is the database row for a view.
type ViewEntity struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	ViewedAt  time.Time `db:"viewed_at"`
	SessionID string    `db:"session_id"`
	Source    string    `db:"source"`
	Referrer  string    `db:"referrer"`
}

// TableName returns the database table name.
func (e *ViewEntity) TableName() string {
	return "product_views"
}

// Entity converts the view to its database row.
func (v *View) Entity() *ViewEntity {
	return &ViewEntity{
		ID:        v.ID,
		ProductID: v.ProductID,
		ViewedAt:  v.ViewedAt,
		SessionID: v.SessionID,
		Source:    v.Source,
		Referrer:  v.Referrer,
	}
}

// ViewStats aggregates views for one product.
type ViewStats struct {
	ProductID     string     `json:"productId"`
	TotalViews    int64      `json:"totalViews"`
	ViewsToday    int64      `json:"viewsToday"`
	ViewsThisWeek int64      `json:"viewsThisWeek"`
	LastViewedAt  *time.Time `json:"lastViewedAt,omitempty"`
}

// ViewCount pairs a product ID with its total views.
type ViewCount struct {
	ProductID  string `json:"productId"`
	TotalViews int64  `json:"totalViews"`
}
