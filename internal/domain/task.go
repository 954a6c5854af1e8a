package domain

import "time"

// Task is a reminder, optionally linked to a lead. Lifecycle: created,
// then at most flipped to completed.
type Task struct {
	ID          string    `json:"id"`
	LeadID      *string   `json:"lead_id,omitempty"`
	Title       string    `json:"title" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}
