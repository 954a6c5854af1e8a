package repository

import (
	"context"
	"encoding/json"
	"time"

	"leadcrm/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	FirstName        string     `gorm:"column:first_name"`
	LastName         string     `gorm:"column:last_name"`
	Email            string     `gorm:"column:email"`
	Phone            *string    `gorm:"column:phone"`
	CompanyName      *string    `gorm:"column:company_name"`
	Sectors          string     `gorm:"column:sectors;type:text"`
	Status           string     `gorm:"column:status"`
	ContactDirection string     `gorm:"column:contact_direction"`
	Notes            *string    `gorm:"column:notes;type:text"`
	LossReason       *string    `gorm:"column:loss_reason"`
	LastContactDate  time.Time  `gorm:"column:last_contact_date"`
	EmailSentDate    *time.Time `gorm:"column:email_sent_date"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	var phone, company, notes, lossReason string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.CompanyName != nil {
		company = *m.CompanyName
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.LossReason != nil {
		lossReason = *m.LossReason
	}

	sectors := []string{}
	if m.Sectors != "" {
		_ = json.Unmarshal([]byte(m.Sectors), &sectors)
	}

	return &domain.Lead{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            phone,
		CompanyName:      company,
		Sectors:          sectors,
		Status:           domain.LeadStatus(m.Status),
		ContactDirection: domain.ContactDirection(m.ContactDirection),
		Notes:            notes,
		LossReason:       lossReason,
		LastContactDate:  m.LastContactDate,
		EmailSentDate:    m.EmailSentDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	var phone, company, notes, lossReason *string
	if l.Phone != "" {
		v := l.Phone
		phone = &v
	}
	if l.CompanyName != "" {
		v := l.CompanyName
		company = &v
	}
	if l.Notes != "" {
		v := l.Notes
		notes = &v
	}
	if l.LossReason != "" {
		v := l.LossReason
		lossReason = &v
	}

	sectors := l.Sectors
	if sectors == nil {
		sectors = []string{}
	}
	sectorsJSON, _ := json.Marshal(sectors)

	return leadModel{
		ID:               l.ID,
		FirstName:        l.FirstName,
		LastName:         l.LastName,
		Email:            l.Email,
		Phone:            phone,
		CompanyName:      company,
		Sectors:          string(sectorsJSON),
		Status:           string(l.Status),
		ContactDirection: string(l.ContactDirection),
		Notes:            notes,
		LossReason:       lossReason,
		LastContactDate:  l.LastContactDate,
		EmailSentDate:    l.EmailSentDate,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var m leadModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLead(m), nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(m)
	return nil
}

// Delete removes the lead, its activity trail, and detaches any linked
// tasks in one transaction.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&leadModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("lead_id = ?", id).Delete(&activityModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&taskModel{}).Where("lead_id = ?", id).Update("lead_id", nil).Error
	})
}
