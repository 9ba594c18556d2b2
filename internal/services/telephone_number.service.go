package services

import (
	"context"

	"github.com/nimasrn/customer-billing/internal/mapper"
	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/nimasrn/customer-billing/pkg/prom"
)

type TelephoneNumberRepository interface {
	Create(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error)
	GetByID(ctx context.Context, id int64) (*model.TelephoneNumber, error)
	GetAll(ctx context.Context) ([]*model.TelephoneNumber, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]*model.TelephoneNumber, error)
	Update(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TelephoneNumberService struct {
	phoneRepo    TelephoneNumberRepository
	customerRepo CustomerChecker
	validator    validate.Validator
}

func NewTelephoneNumberService(phoneRepo TelephoneNumberRepository, customerRepo CustomerChecker, v validate.Validator) *TelephoneNumberService {
	return &TelephoneNumberService{
		phoneRepo:    phoneRepo,
		customerRepo: customerRepo,
		validator:    v,
	}
}

func (s *TelephoneNumberService) Create(ctx context.Context, req model.TelephoneNumberCreateRequest) (*model.TelephoneNumberResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityTelephoneNumber, errs)
	}

	ok, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, customerMissing(req.CustomerID)
	}

	created, err := s.phoneRepo.Create(ctx, mapper.NewTelephoneNumber(req.CustomerID, req.Details()))
	if err != nil {
		return nil, storeMissingCustomer(err, req.CustomerID)
	}
	prom.AddEntityWrite(entityTelephoneNumber, prom.OpCreate)

	resp := mapper.ToTelephoneNumberResponse(created)
	return &resp, nil
}

func (s *TelephoneNumberService) Get(ctx context.Context, id int64) (*model.TelephoneNumberResponse, error) {
	p, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.ToTelephoneNumberResponse(p)
	return &resp, nil
}

func (s *TelephoneNumberService) List(ctx context.Context) ([]model.TelephoneNumberResponse, error) {
	numbers, err := s.phoneRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToTelephoneNumberResponses(numbers), nil
}

func (s *TelephoneNumberService) ListByCustomer(ctx context.Context, customerID int64) ([]model.TelephoneNumberResponse, error) {
	ok, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, customerMissing(customerID)
	}

	numbers, err := s.phoneRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapper.ToTelephoneNumberResponses(numbers), nil
}

func (s *TelephoneNumberService) Update(ctx context.Context, id int64, req model.TelephoneNumberDetailsRequest) (*model.TelephoneNumberResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityTelephoneNumber, errs)
	}

	current, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapper.ApplyTelephoneNumberUpdate(current, req)
	updated, err := s.phoneRepo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	prom.AddEntityWrite(entityTelephoneNumber, prom.OpUpdate)

	resp := mapper.ToTelephoneNumberResponse(updated)
	return &resp, nil
}

func (s *TelephoneNumberService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.phoneRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewNotFoundError("Telephone number with id %d not found.", id)
	}
	prom.AddEntityWrite(entityTelephoneNumber, prom.OpDelete)
	return nil
}
