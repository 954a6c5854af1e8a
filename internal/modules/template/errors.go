package template

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrTemplateNotFound = errors.New("template not found")
)
