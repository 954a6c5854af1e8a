package task

import (
	"context"

	"leadcrm/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context) ([]domain.Task, error)
	ListOpen(ctx context.Context, limit int) ([]domain.Task, error)
	Complete(ctx context.Context, id string) error
}

// LeadReader verifies that a task's lead link points at a real lead.
type LeadReader interface {
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
}
