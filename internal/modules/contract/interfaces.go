package contract

import (
	"context"

	"leadcrm/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	List(ctx context.Context, query string) ([]domain.Contract, error)
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id string) error
}
