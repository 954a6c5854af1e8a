package task

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrTaskNotFound = errors.New("task not found")
	ErrLeadNotFound = errors.New("lead not found")
)
