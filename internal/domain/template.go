package domain

import "time"

// EmailTemplate is a canned title/subject/content triple. Read-only at
// use time (the client copies the content), independently CRUD-able.
type EmailTemplate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Subject   string    `json:"subject" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
