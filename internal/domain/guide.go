package domain

import "time"

// Guide - independent read-only editorial content grouped by category.
// Guides have no coupling to entities or signals beyond category lookup.
type Guide struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
