package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadcrm/internal/domain"
	"leadcrm/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	leads      LeadRepository
	activities ActivityRepository
}

func NewService(leads LeadRepository, activities ActivityRepository) *Service {
	return &Service{
		leads:      leads,
		activities: activities,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	direction := domain.ContactDirection(req.ContactDirection)
	if direction == "" {
		direction = domain.DirectionOutbound
	}
	if direction != domain.DirectionInbound && direction != domain.DirectionOutbound {
		return nil, ErrValidation
	}
	if !validSectors(req.Sectors) {
		return nil, ErrValidation
	}

	now := time.Now()
	l := &domain.Lead{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		CompanyName:      req.CompanyName,
		Sectors:          req.Sectors,
		Status:           domain.LeadNew,
		ContactDirection: direction,
		Notes:            req.Notes,
		LastContactDate:  now,
	}

	if errs := validator.Validate(l); errs != nil {
		return nil, ErrValidation
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := s.appendActivity(ctx, l.ID, domain.ActivityCreated, "Müşteri sisteme eklendi."); err != nil {
		return nil, err
	}
	return l, nil
}

// Update applies a partial edit and derives timeline entries from the
// field changes. The lead row is written first; a failed activity
// append surfaces as an error while the lead edit stays committed.
func (s *Service) Update(ctx context.Context, id string, req UpdateLeadRequest) (*domain.Lead, error) {
	if req.ContactDirection != nil {
		d := domain.ContactDirection(*req.ContactDirection)
		if d != domain.DirectionInbound && d != domain.DirectionOutbound {
			return nil, ErrValidation
		}
	}
	if req.Sectors != nil && !validSectors(*req.Sectors) {
		return nil, ErrValidation
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := *current

	update := LeadUpdate{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		CompanyName:   req.CompanyName,
		Sectors:       req.Sectors,
		Notes:         req.Notes,
		EmailSentDate: req.EmailSentDate,
	}
	if req.ContactDirection != nil {
		d := domain.ContactDirection(*req.ContactDirection)
		update.ContactDirection = &d
	}

	applyUpdate(current, update)
	current.UpdatedAt = time.Now()

	if errs := validator.Validate(current); errs != nil {
		return nil, ErrValidation
	}

	if err := s.leads.Update(ctx, current); err != nil {
		return nil, err
	}

	for _, a := range deriveActivities(&prev, current) {
		if err := s.appendActivity(ctx, id, a.Type, a.Details); err != nil {
			return nil, err
		}
	}
	return current, nil
}

// ChangeStatus moves the lead along the pipeline. Stage-specific side
// data (email sent date, loss reason) is resolved by the transition
// builder before anything is written.
func (s *Service) ChangeStatus(ctx context.Context, id string, req ChangeStatusRequest) (*domain.Lead, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := *current

	update, err := BuildStatusUpdate(current, req)
	if err != nil {
		return nil, err
	}

	applyUpdate(current, update)
	current.UpdatedAt = time.Now()

	if err := s.leads.Update(ctx, current); err != nil {
		return nil, err
	}

	for _, a := range deriveActivities(&prev, current) {
		if err := s.appendActivity(ctx, id, a.Type, a.Details); err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}
	return nil
}

// LogCall bumps the last contact date and appends a call entry to the
// timeline.
func (s *Service) LogCall(ctx context.Context, id string, req LogCallRequest) (*domain.Lead, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	current.LastContactDate = now
	current.UpdatedAt = now

	if err := s.leads.Update(ctx, current); err != nil {
		return nil, err
	}

	details := req.Note
	if details == "" {
		details = "Telefon görüşmesi yapıldı."
	}
	if err := s.appendActivity(ctx, id, domain.ActivityCallMade, details); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Activities(ctx context.Context, id string) ([]domain.LeadActivity, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.activities.ListByLead(ctx, id)
}

func (s *Service) appendActivity(ctx context.Context, leadID string, typ domain.ActivityType, details string) error {
	a := &domain.LeadActivity{
		LeadID:    leadID,
		Type:      typ,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := s.activities.Create(ctx, a); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			return ErrLeadNotFound
		}
		return err
	}
	return nil
}

func applyUpdate(l *domain.Lead, u LeadUpdate) {
	if u.FirstName != nil {
		l.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		l.LastName = *u.LastName
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.CompanyName != nil {
		l.CompanyName = *u.CompanyName
	}
	if u.Sectors != nil {
		l.Sectors = *u.Sectors
	}
	if u.ContactDirection != nil {
		l.ContactDirection = *u.ContactDirection
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	if u.LossReason != nil {
		l.LossReason = *u.LossReason
	}
	if u.LastContactDate != nil {
		l.LastContactDate = *u.LastContactDate
	}
	if u.EmailSentDate != nil {
		t := *u.EmailSentDate
		l.EmailSentDate = &t
	}
}

// deriveActivities compares a lead before and after an edit and
// produces the timeline entries the change implies.
func deriveActivities(prev, next *domain.Lead) []domain.LeadActivity {
	var out []domain.LeadActivity

	if prev.Status != next.Status {
		out = append(out, domain.LeadActivity{
			Type:    domain.ActivityStatusChange,
			Details: fmt.Sprintf("Aşama değişti: %s", next.Status.Label()),
		})
	}

	if prev.Notes != next.Notes {
		out = append(out, domain.LeadActivity{
			Type:    domain.ActivityNoteAdded,
			Details: "Müşteri notu güncellendi/eklendi.",
		})
	}

	if next.EmailSentDate != nil &&
		(prev.EmailSentDate == nil || !prev.EmailSentDate.Equal(*next.EmailSentDate)) {
		out = append(out, domain.LeadActivity{
			Type:    domain.ActivityEmailSent,
			Details: "E-posta gönderim tarihi belirlendi.",
		})
	}

	return out
}

func validSectors(sectors []string) bool {
	for _, s := range sectors {
		found := false
		for _, known := range domain.Sectors {
			if s == known {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
