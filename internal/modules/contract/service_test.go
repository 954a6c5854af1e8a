package contract

import (
	"context"
	"testing"
	"time"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	if c != nil && c.ID == "" {
		c.ID = "contract-1"
	}
	return args.Error(0)
}

func (m *MockContractRepository) List(ctx context.Context, query string) ([]domain.Contract, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestLifecycle_Active(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := &domain.Contract{ContractDate: now.AddDate(0, 0, -100)}

	lc := Lifecycle(c, now)

	assert.Equal(t, domain.ContractActive, lc.State)
	assert.Equal(t, c.ContractDate.AddDate(1, 0, 0), lc.EndDate)
	assert.Greater(t, lc.RemainingDays, 30)
	assert.InDelta(t, 27.4, lc.ProgressPercent, 0.5)
}

func TestLifecycle_WarningInsideThirtyDays(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := &domain.Contract{ContractDate: now.AddDate(0, 0, -340)}

	lc := Lifecycle(c, now)

	assert.Equal(t, domain.ContractWarning, lc.State)
	assert.LessOrEqual(t, lc.RemainingDays, 30)
	assert.Greater(t, lc.RemainingDays, 0)
}

func TestLifecycle_Expired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := &domain.Contract{ContractDate: now.AddDate(0, 0, -400)}

	lc := Lifecycle(c, now)

	assert.Equal(t, domain.ContractExpired, lc.State)
	assert.LessOrEqual(t, lc.RemainingDays, 0)
	assert.Equal(t, 100.0, lc.ProgressPercent)
}

func TestLifecycle_PartialDaysRoundUp(t *testing.T) {
	contractDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	// 12 hours before the end date still counts as one remaining day
	now := contractDate.AddDate(1, 0, 0).Add(-12 * time.Hour)

	lc := Lifecycle(&domain.Contract{ContractDate: contractDate}, now)

	assert.Equal(t, 1, lc.RemainingDays)
	assert.Equal(t, domain.ContractWarning, lc.State)
}

func TestLifecycle_FutureContractClampsProgress(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	c := &domain.Contract{ContractDate: now.AddDate(0, 0, 10)}

	lc := Lifecycle(c, now)

	assert.Equal(t, 0.0, lc.ProgressPercent)
	assert.Equal(t, domain.ContractActive, lc.State)
}

func TestCreateContract_RejectsUnknownAssignee(t *testing.T) {
	svc := NewService(new(MockContractRepository))

	_, err := svc.Create(context.Background(), ContractRequest{
		CustomerName: "Acme",
		ContractDate: time.Now(),
		Assignees:    []string{"Mehmet"},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateContract_AttachesLifecycle(t *testing.T) {
	repo := new(MockContractRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

	view, err := svc.Create(context.Background(), ContractRequest{
		CustomerName: "Acme",
		ContractDate: time.Now().AddDate(0, 0, -10),
		Assignees:    []string{"Elif"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ContractActive, view.Lifecycle.State)
	assert.False(t, view.Lifecycle.EndDate.IsZero())
}

func TestUpdateContract_NotFound(t *testing.T) {
	repo := new(MockContractRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), "missing", ContractRequest{
		CustomerName: "Acme",
		ContractDate: time.Now(),
	})

	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestDeleteContract_NotFound(t *testing.T) {
	repo := new(MockContractRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrContractNotFound)
}
