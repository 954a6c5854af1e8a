package repository

import (
	"context"
	"time"

	"leadcrm/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	LeadID    string    `gorm:"column:lead_id;index"`
	Type      string    `gorm:"column:type"`
	Details   string    `gorm:"column:details;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (activityModel) TableName() string { return "lead_activities" }

func toDomainActivity(m activityModel) *domain.LeadActivity {
	return &domain.LeadActivity{
		ID:        m.ID,
		LeadID:    m.LeadID,
		Type:      domain.ActivityType(m.Type),
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}

func toActivityModel(a *domain.LeadActivity) activityModel {
	return activityModel{
		ID:        a.ID,
		LeadID:    a.LeadID,
		Type:      string(a.Type),
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.LeadActivity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	m := toActivityModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainActivity(m)
	return nil
}

func (r *ActivityRepository) ListByLead(ctx context.Context, leadID string) ([]domain.LeadActivity, error) {
	var models []activityModel
	tx := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	activities := make([]domain.LeadActivity, 0, len(models))
	for _, m := range models {
		activities = append(activities, *toDomainActivity(m))
	}
	return activities, nil
}
