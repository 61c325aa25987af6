package models

import "time"

// Subject is a top-level study area grouping goals and tasks.
type Subject struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TotalHours  float64   `json:"totalHours,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
