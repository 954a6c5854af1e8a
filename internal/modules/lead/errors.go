package lead

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrEmailDateRequired = errors.New("email sent date required")
	ErrInvalidLossReason = errors.New("invalid loss reason")
)
