package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"leadcrm/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	CustomerName   string    `gorm:"column:customer_name"`
	CustomerLogo   *string   `gorm:"column:customer_logo"`
	HasFrontend    bool      `gorm:"column:has_frontend"`
	HasBackend     bool      `gorm:"column:has_backend"`
	HasSocialMedia bool      `gorm:"column:has_social_media"`
	HasPrintMedia  bool      `gorm:"column:has_print_media"`
	ContractDate   time.Time `gorm:"column:contract_date"`
	MonthlyPayment float64   `gorm:"column:monthly_payment"`
	Assignees      string    `gorm:"column:assignees;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (contractModel) TableName() string { return "contracts" }

func toDomainContract(m contractModel) *domain.Contract {
	var logo string
	if m.CustomerLogo != nil {
		logo = *m.CustomerLogo
	}

	assignees := []string{}
	if m.Assignees != "" {
		_ = json.Unmarshal([]byte(m.Assignees), &assignees)
	}

	return &domain.Contract{
		ID:             m.ID,
		CustomerName:   m.CustomerName,
		CustomerLogo:   logo,
		HasFrontend:    m.HasFrontend,
		HasBackend:     m.HasBackend,
		HasSocialMedia: m.HasSocialMedia,
		HasPrintMedia:  m.HasPrintMedia,
		ContractDate:   m.ContractDate,
		MonthlyPayment: m.MonthlyPayment,
		Assignees:      assignees,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toContractModel(c *domain.Contract) contractModel {
	var logo *string
	if c.CustomerLogo != "" {
		v := c.CustomerLogo
		logo = &v
	}

	assignees := c.Assignees
	if assignees == nil {
		assignees = []string{}
	}
	assigneesJSON, _ := json.Marshal(assignees)

	return contractModel{
		ID:             c.ID,
		CustomerName:   c.CustomerName,
		CustomerLogo:   logo,
		HasFrontend:    c.HasFrontend,
		HasBackend:     c.HasBackend,
		HasSocialMedia: c.HasSocialMedia,
		HasPrintMedia:  c.HasPrintMedia,
		ContractDate:   c.ContractDate,
		MonthlyPayment: c.MonthlyPayment,
		Assignees:      string(assigneesJSON),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m := toContractModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainContract(m)
	return nil
}

// List returns contracts ordered by contract date, newest first.
// A non-empty query filters by customer name, case-insensitive.
func (r *ContractRepository) List(ctx context.Context, query string) ([]domain.Contract, error) {
	q := r.db.WithContext(ctx).Order("contract_date DESC")
	if query != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var models []contractModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	contracts := make([]domain.Contract, 0, len(models))
	for _, m := range models {
		contracts = append(contracts, *toDomainContract(m))
	}
	return contracts, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	var m contractModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainContract(m), nil
}

func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	m := toContractModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainContract(m)
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&contractModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
