package domain

import "time"

// SeedReviews returns the initial review set loaded when no snapshot
// exists yet.
func SeedReviews() []*Review {
	return []*Review{
		{
			ID:        "r1",
			ProductID: "1",
			UserID:    "u100",
			UserName:  "Juan Dela Cruz",
			Rating:    5,
			Title:     "Best gaming laptop I've owned",
			Comment:   "Runs every title I throw at it on ultra settings. The cooling is loud under load but keeps temps in check.",
			Pros:      []string{"RTX 4070 performance", "165Hz display"},
			Cons:      []string{"Fans get loud"},
			Images: []Image{
				{ID: "img1", URL: "/placeholder.svg?height=300&width=400&text=Gaming+Setup", Alt: "Gaming setup with laptop"},
				{ID: "img2", URL: "/placeholder.svg?height=300&width=400&text=RGB+Keyboard", Alt: "RGB keyboard in action"},
			},
			Verified:        true,
			HelpfulCount:    12,
			NotHelpfulCount: 1,
			CreatedAt:       time.Date(2025, time.June, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:              "r2",
			ProductID:       "1",
			UserID:          "u101",
			UserName:        "Maria Santos",
			Rating:          4,
			Title:           "Great performance, heavy chassis",
			Comment:         "Amazing machine for the price but not something you want to carry around campus every day.",
			Pros:            []string{"Value for money"},
			Cons:            []string{"Weight", "Battery life"},
			Verified:        true,
			HelpfulCount:    8,
			NotHelpfulCount: 2,
			CreatedAt:       time.Date(2025, time.July, 2, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:           "r3",
			ProductID:    "2",
			UserID:       "u102",
			UserName:     "Carlo Reyes",
			Rating:       5,
			Title:        "Perfect for office work",
			Comment:      "Keyboard is superb and it handles a full day of meetings on one charge.",
			Pros:         []string{"Keyboard", "Battery life"},
			Verified:     false,
			HelpfulCount: 5,
			CreatedAt:    time.Date(2025, time.July, 20, 11, 0, 0, 0, time.UTC),
		},
	}
}
