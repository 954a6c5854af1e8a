package template

import (
	"context"
	"errors"
	"time"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	templates TemplateRepository
}

func NewService(templates TemplateRepository) *Service {
	return &Service{templates: templates}
}

func (s *Service) Create(ctx context.Context, req TemplateRequest) (*domain.EmailTemplate, error) {
	t := &domain.EmailTemplate{
		Title:   req.Title,
		Subject: req.Subject,
		Content: req.Content,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	return s.templates.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req TemplateRequest) (*domain.EmailTemplate, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	t.Title = req.Title
	t.Subject = req.Subject
	t.Content = req.Content
	t.UpdatedAt = time.Now()

	if err := s.templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}
