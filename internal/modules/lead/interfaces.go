package lead

import (
	"context"

	"leadcrm/internal/domain"
)

// LeadRepository defines the persistence operations the service needs
// for leads.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository defines the persistence operations for the
// append-only activity timeline.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.LeadActivity) error
	ListByLead(ctx context.Context, leadID string) ([]domain.LeadActivity, error)
}
