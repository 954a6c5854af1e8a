package contract

import (
	"context"
	"errors"
	"time"

	"leadcrm/internal/domain"
	"leadcrm/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	contracts ContractRepository
	now       func() time.Time
}

func NewService(contracts ContractRepository) *Service {
	return &Service{
		contracts: contracts,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req ContractRequest) (*ContractView, error) {
	if !validAssignees(req.Assignees) {
		return nil, ErrValidation
	}

	c := &domain.Contract{
		CustomerName:   req.CustomerName,
		CustomerLogo:   req.CustomerLogo,
		HasFrontend:    req.HasFrontend,
		HasBackend:     req.HasBackend,
		HasSocialMedia: req.HasSocialMedia,
		HasPrintMedia:  req.HasPrintMedia,
		ContractDate:   req.ContractDate,
		MonthlyPayment: req.MonthlyPayment,
		Assignees:      req.Assignees,
	}

	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}

	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

func (s *Service) List(ctx context.Context, query string) ([]ContractView, error) {
	contracts, err := s.contracts.List(ctx, query)
	if err != nil {
		return nil, err
	}

	views := make([]ContractView, 0, len(contracts))
	for i := range contracts {
		views = append(views, *s.view(&contracts[i]))
	}
	return views, nil
}

// Update replaces the editable fields wholesale. The lifecycle is not
// part of the payload; it follows from the new contract date.
func (s *Service) Update(ctx context.Context, id string, req ContractRequest) (*ContractView, error) {
	if !validAssignees(req.Assignees) {
		return nil, ErrValidation
	}

	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	c.CustomerName = req.CustomerName
	c.CustomerLogo = req.CustomerLogo
	c.HasFrontend = req.HasFrontend
	c.HasBackend = req.HasBackend
	c.HasSocialMedia = req.HasSocialMedia
	c.HasPrintMedia = req.HasPrintMedia
	c.ContractDate = req.ContractDate
	c.MonthlyPayment = req.MonthlyPayment
	c.Assignees = req.Assignees
	c.UpdatedAt = s.now()

	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}

	if err := s.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.contracts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		return err
	}
	return nil
}

func (s *Service) view(c *domain.Contract) *ContractView {
	return &ContractView{
		Contract:  *c,
		Lifecycle: Lifecycle(c, s.now()),
	}
}

func validAssignees(assignees []string) bool {
	for _, a := range assignees {
		found := false
		for _, known := range domain.ContractAssignees {
			if a == known {
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
