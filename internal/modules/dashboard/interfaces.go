package dashboard

import (
	"context"

	"leadcrm/internal/domain"
)

type LeadReader interface {
	List(ctx context.Context) ([]domain.Lead, error)
}

type TaskReader interface {
	ListOpen(ctx context.Context, limit int) ([]domain.Task, error)
}

type ContractReader interface {
	List(ctx context.Context, query string) ([]domain.Contract, error)
}
