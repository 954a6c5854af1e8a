package domain

import "time"

// ContractAssignees is the fixed roster contract work can be assigned to.
var ContractAssignees = []string{"Çiğdem", "Volkan", "Elif"}

type Contract struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customer_name" validate:"required"`
	CustomerLogo   string    `json:"customer_logo,omitempty" validate:"omitempty,url"`
	HasFrontend    bool      `json:"has_frontend"`
	HasBackend     bool      `json:"has_backend"`
	HasSocialMedia bool      `json:"has_social_media"`
	HasPrintMedia  bool      `json:"has_print_media"`
	ContractDate   time.Time `json:"contract_date" validate:"required"`
	MonthlyPayment float64   `json:"monthly_payment" validate:"gte=0"`
	Assignees      []string  `json:"assignees"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ContractState string

const (
	ContractActive  ContractState = "active"
	ContractWarning ContractState = "warning"
	ContractExpired ContractState = "expired"
)

// ContractLifecycle is derived at render time from ContractDate and the
// current clock. It is never persisted.
type ContractLifecycle struct {
	EndDate         time.Time     `json:"end_date"`
	RemainingDays   int           `json:"remaining_days"`
	State           ContractState `json:"state"`
	ProgressPercent float64       `json:"progress_percent"`
}
