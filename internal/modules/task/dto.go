package task

import "time"

type CreateTaskRequest struct {
	Title   string    `json:"title" binding:"required"`
	DueDate time.Time `json:"due_date" binding:"required"`
	LeadID  *string   `json:"lead_id"`
}
