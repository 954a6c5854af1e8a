package task

import (
	"context"
	"errors"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	tasks TaskRepository
	leads LeadReader
}

func NewService(tasks TaskRepository, leads LeadReader) *Service {
	return &Service{
		tasks: tasks,
		leads: leads,
	}
}

func (s *Service) Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	if req.LeadID != nil {
		if _, err := s.leads.GetByID(ctx, *req.LeadID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLeadNotFound
			}
			return nil, err
		}
	}

	t := &domain.Task{
		LeadID:    req.LeadID,
		Title:     req.Title,
		DueDate:   req.DueDate,
		CreatedAt: time.Now(),
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns every task. With openOnly set, completed tasks are
// filtered out and the result is capped at limit (0 for no cap).
func (s *Service) List(ctx context.Context, openOnly bool, limit int) ([]domain.Task, error) {
	if openOnly {
		return s.tasks.ListOpen(ctx, limit)
	}
	return s.tasks.List(ctx)
}

func (s *Service) Complete(ctx context.Context, id string) error {
	if err := s.tasks.Complete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
