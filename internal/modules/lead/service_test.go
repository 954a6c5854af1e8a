package lead

import (
	"context"
	"testing"
	"time"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	if l != nil && l.ID == "" {
		l.ID = "lead-1"
	}
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a *domain.LeadActivity) error {
	args := m.Called(ctx, a)
	if a != nil && a.ID == "" {
		a.ID = "act-1"
	}
	return args.Error(0)
}

func (m *MockActivityRepository) ListByLead(ctx context.Context, leadID string) ([]domain.LeadActivity, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadActivity), args.Error(1)
}

func storedLead() *domain.Lead {
	return &domain.Lead{
		ID:               "lead-1",
		FirstName:        "Ayşe",
		LastName:         "Yılmaz",
		Email:            "ayse@acme.com",
		CompanyName:      "Acme",
		Sectors:          []string{"Software"},
		Status:           domain.LeadNew,
		ContactDirection: domain.DirectionOutbound,
		LastContactDate:  time.Now().Add(-48 * time.Hour),
	}
}

func TestCreateLead_RecordsCreatedActivity(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("Create", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LeadActivity) bool {
		return a.Type == domain.ActivityCreated && a.Details == "Müşteri sisteme eklendi."
	})).Return(nil)

	l, err := svc.Create(context.Background(), CreateLeadRequest{
		FirstName: "Ayşe",
		LastName:  "Yılmaz",
		Email:     "ayse@acme.com",
		Sectors:   []string{"Software"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadNew, l.Status)
	assert.Equal(t, domain.DirectionOutbound, l.ContactDirection)
	assert.False(t, l.LastContactDate.IsZero())
	leads.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestCreateLead_RejectsUnknownSector(t *testing.T) {
	svc := NewService(new(MockLeadRepository), new(MockActivityRepository))

	_, err := svc.Create(context.Background(), CreateLeadRequest{
		Email:   "a@b.com",
		Sectors: []string{"Aerospace"},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateLead_NoteChangeDerivesActivity(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LeadActivity) bool {
		return a.Type == domain.ActivityNoteAdded && a.Details == "Müşteri notu güncellendi/eklendi."
	})).Return(nil)

	notes := "Toplantı olumlu geçti"
	l, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{Notes: &notes})

	assert.NoError(t, err)
	assert.Equal(t, notes, l.Notes)
	activities.AssertExpectations(t)
}

func TestUpdateLead_ClearedNotesDeriveActivity(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	withNotes := storedLead()
	withNotes.Notes = "Cuma günü geri ara"
	leads.On("GetByID", mock.Anything, "lead-1").Return(withNotes, nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LeadActivity) bool {
		return a.Type == domain.ActivityNoteAdded && a.Details == "Müşteri notu güncellendi/eklendi."
	})).Return(nil)

	empty := ""
	l, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{Notes: &empty})

	assert.NoError(t, err)
	assert.Equal(t, "", l.Notes)
	activities.AssertExpectations(t)
}

func TestUpdateLead_UnchangedFieldsDeriveNothing(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)

	phone := "+90 555 111 22 33"
	_, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{Phone: &phone})

	assert.NoError(t, err)
	activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateLead_NotFound(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewService(leads, new(MockActivityRepository))

	leads.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	notes := "x"
	_, err := svc.Update(context.Background(), "missing", UpdateLeadRequest{Notes: &notes})

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestChangeStatus_RecordsStatusActivity(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LeadActivity) bool {
		return a.Type == domain.ActivityStatusChange && a.Details == "Aşama değişti: İletişimde"
	})).Return(nil)

	l, err := svc.ChangeStatus(context.Background(), "lead-1", ChangeStatusRequest{Status: "contacted"})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, l.Status)
	activities.AssertExpectations(t)
}

func TestChangeStatus_SentRecordsEmailActivity(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.LeadActivity")).Return(nil)

	sent := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	l, err := svc.ChangeStatus(context.Background(), "lead-1", ChangeStatusRequest{
		Status:        "sent",
		EmailSentDate: &sent,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadSent, l.Status)
	assert.NotNil(t, l.EmailSentDate)
	activities.AssertNumberOfCalls(t, "Create", 2)
}

func TestChangeStatus_SentWithoutDateFails(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewService(leads, new(MockActivityRepository))

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)

	_, err := svc.ChangeStatus(context.Background(), "lead-1", ChangeStatusRequest{Status: "sent"})

	assert.ErrorIs(t, err, ErrEmailDateRequired)
	leads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeStatus_LostDefaultsReason(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.AnythingOfType("*domain.LeadActivity")).Return(nil)

	l, err := svc.ChangeStatus(context.Background(), "lead-1", ChangeStatusRequest{Status: "lost"})

	assert.NoError(t, err)
	assert.Equal(t, domain.LossReasonUnspecified, l.LossReason)
}

func TestDeleteLead_NotFound(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewService(leads, new(MockActivityRepository))

	leads.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestLogCall_BumpsLastContactDate(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	before := storedLead().LastContactDate
	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)
	activities.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LeadActivity) bool {
		return a.Type == domain.ActivityCallMade && a.Details == "Telefon görüşmesi yapıldı."
	})).Return(nil)

	l, err := svc.LogCall(context.Background(), "lead-1", LogCallRequest{})

	assert.NoError(t, err)
	assert.True(t, l.LastContactDate.After(before))
	activities.AssertExpectations(t)
}

func TestActivities_ReturnsTimeline(t *testing.T) {
	leads := new(MockLeadRepository)
	activities := new(MockActivityRepository)
	svc := NewService(leads, activities)

	leads.On("GetByID", mock.Anything, "lead-1").Return(storedLead(), nil)
	activities.On("ListByLead", mock.Anything, "lead-1").Return([]domain.LeadActivity{
		{ID: "a2", Type: domain.ActivityStatusChange},
		{ID: "a1", Type: domain.ActivityCreated},
	}, nil)

	out, err := svc.Activities(context.Background(), "lead-1")

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "a2", out[0].ID)
}
