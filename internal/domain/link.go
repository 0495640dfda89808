package domain

import "time"

// Link is a single entry on a user's public profile page.
type Link struct {
	ID        string
	UserID    string
	Title     string
	URL       string
	IsVisible bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
