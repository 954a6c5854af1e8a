package template

import (
	"context"

	"leadcrm/internal/domain"
)

type TemplateRepository interface {
	Create(ctx context.Context, t *domain.EmailTemplate) error
	List(ctx context.Context) ([]domain.EmailTemplate, error)
	GetByID(ctx context.Context, id string) (*domain.EmailTemplate, error)
	Update(ctx context.Context, t *domain.EmailTemplate) error
	Delete(ctx context.Context, id string) error
}
