package lead

import (
	"time"

	"leadcrm/internal/domain"
)

type CreateLeadRequest struct {
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone"`
	CompanyName      string   `json:"company_name"`
	Sectors          []string `json:"sectors"`
	ContactDirection string   `json:"contact_direction"`
	Notes            string   `json:"notes"`
}

// UpdateLeadRequest carries a partial update. Nil fields are left
// untouched; the status field is rejected here and must go through the
// status endpoint.
type UpdateLeadRequest struct {
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	Email            *string    `json:"email"`
	Phone            *string    `json:"phone"`
	CompanyName      *string    `json:"company_name"`
	Sectors          *[]string  `json:"sectors"`
	ContactDirection *string    `json:"contact_direction"`
	Notes            *string    `json:"notes"`
	EmailSentDate    *time.Time `json:"email_sent_date"`
}

type ChangeStatusRequest struct {
	Status        string     `json:"status" binding:"required"`
	EmailSentDate *time.Time `json:"email_sent_date"`
	LossReason    string     `json:"loss_reason"`
}

type LogCallRequest struct {
	Note string `json:"note"`
}

// LeadUpdate is the resolved partial update applied to a stored lead.
// It is produced either directly from an UpdateLeadRequest or by the
// status transition builder.
type LeadUpdate struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	CompanyName      *string
	Sectors          *[]string
	ContactDirection *domain.ContactDirection
	Status           *domain.LeadStatus
	Notes            *string
	LossReason       *string
	LastContactDate  *time.Time
	EmailSentDate    *time.Time
}
