package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

type templateModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Subject   string    `gorm:"column:subject"`
	Content   string    `gorm:"column:content;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (templateModel) TableName() string { return "email_templates" }

func toDomainTemplate(m templateModel) *domain.EmailTemplate {
	return &domain.EmailTemplate{
		ID:        m.ID,
		Title:     m.Title,
		Subject:   m.Subject,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTemplateModel(t *domain.EmailTemplate) templateModel {
	return templateModel{
		ID:        t.ID,
		Title:     t.Title,
		Subject:   t.Subject,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.EmailTemplate) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m := toTemplateModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTemplate(m)
	return nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	var models []templateModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	templates := make([]domain.EmailTemplate, 0, len(models))
	for _, m := range models {
		templates = append(templates, *toDomainTemplate(m))
	}
	return templates, nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	var m templateModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTemplate(m), nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *domain.EmailTemplate) error {
	m := toTemplateModel(t)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTemplate(m)
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&templateModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
