package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	LeadID      *string   `gorm:"column:lead_id;index"`
	Title       string    `gorm:"column:title"`
	DueDate     time.Time `gorm:"column:due_date"`
	IsCompleted bool      `gorm:"column:is_completed"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (taskModel) TableName() string { return "tasks" }

func toDomainTask(m taskModel) *domain.Task {
	return &domain.Task{
		ID:          m.ID,
		LeadID:      m.LeadID,
		Title:       m.Title,
		DueDate:     m.DueDate,
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}

func toTaskModel(t *domain.Task) taskModel {
	return taskModel{
		ID:          t.ID,
		LeadID:      t.LeadID,
		Title:       t.Title,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m := toTaskModel(t)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTask(m)
	return nil
}

// ListOpen returns pending tasks ordered by due date, soonest first.
// A limit of 0 means no limit.
func (r *TaskRepository) ListOpen(ctx context.Context, limit int) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Order("due_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []taskModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, *toDomainTask(m))
	}
	return tasks, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var models []taskModel
	tx := r.db.WithContext(ctx).Order("due_date ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	tasks := make([]domain.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, *toDomainTask(m))
	}
	return tasks, nil
}

func (r *TaskRepository) Complete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ?", id).
		Update("is_completed", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
