package contract

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrContractNotFound = errors.New("contract not found")
)
