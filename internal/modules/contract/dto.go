package contract

import (
	"time"

	"leadcrm/internal/domain"
)

type ContractRequest struct {
	CustomerName   string    `json:"customer_name" binding:"required"`
	CustomerLogo   string    `json:"customer_logo"`
	HasFrontend    bool      `json:"has_frontend"`
	HasBackend     bool      `json:"has_backend"`
	HasSocialMedia bool      `json:"has_social_media"`
	HasPrintMedia  bool      `json:"has_print_media"`
	ContractDate   time.Time `json:"contract_date" binding:"required"`
	MonthlyPayment float64   `json:"monthly_payment"`
	Assignees      []string  `json:"assignees"`
}

// ContractView pairs a stored contract with its derived lifecycle.
// The lifecycle is never persisted; it is recomputed on every read.
type ContractView struct {
	domain.Contract
	Lifecycle domain.ContractLifecycle `json:"lifecycle"`
}
