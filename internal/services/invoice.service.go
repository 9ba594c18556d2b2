package services

import (
	"context"

	"github.com/nimasrn/customer-billing/internal/mapper"
	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/nimasrn/customer-billing/pkg/prom"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	GetAll(ctx context.Context) ([]*model.Invoice, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]*model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) (bool, error)
	InvoiceNumberExists(ctx context.Context, number string, excludeID *int64) (bool, error)
}

// CustomerChecker confirms a referenced customer exists before a dependent write.
type CustomerChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type InvoiceService struct {
	invoiceRepo  InvoiceRepository
	customerRepo CustomerChecker
	validator    validate.Validator
}

func NewInvoiceService(invoiceRepo InvoiceRepository, customerRepo CustomerChecker, v validate.Validator) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		validator:    v,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req model.InvoiceCreateRequest) (*model.InvoiceResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityInvoice, errs)
	}

	if err := s.requireCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	taken, err := s.invoiceRepo.InvoiceNumberExists(ctx, req.InvoiceNumber, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(entityInvoice, invoiceNumberTaken(req.InvoiceNumber))
	}

	created, err := s.invoiceRepo.Create(ctx, mapper.NewInvoice(req.CustomerID, req.Details()))
	if err != nil {
		err = storeMissingCustomer(err, req.CustomerID)
		return nil, storeConflict(err, entityInvoice, invoiceNumberTaken(req.InvoiceNumber))
	}
	prom.AddEntityWrite(entityInvoice, prom.OpCreate)

	resp := mapper.ToInvoiceResponse(created)
	return &resp, nil
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (*model.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.ToInvoiceResponse(inv)
	return &resp, nil
}

func (s *InvoiceService) List(ctx context.Context) ([]model.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToInvoiceResponses(invoices), nil
}

func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID int64) ([]model.InvoiceResponse, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapper.ToInvoiceResponses(invoices), nil
}

// Update changes number, date and amount. The owning customer is kept.
func (s *InvoiceService) Update(ctx context.Context, id int64, req model.InvoiceDetailsRequest) (*model.InvoiceResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityInvoice, errs)
	}

	current, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.invoiceRepo.InvoiceNumberExists(ctx, req.InvoiceNumber, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(entityInvoice, invoiceNumberTaken(req.InvoiceNumber))
	}

	mapper.ApplyInvoiceUpdate(current, req)
	updated, err := s.invoiceRepo.Update(ctx, current)
	if err != nil {
		return nil, storeConflict(err, entityInvoice, invoiceNumberTaken(req.InvoiceNumber))
	}
	prom.AddEntityWrite(entityInvoice, prom.OpUpdate)

	resp := mapper.ToInvoiceResponse(updated)
	return &resp, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewNotFoundError("Invoice with id %d not found.", id)
	}
	prom.AddEntityWrite(entityInvoice, prom.OpDelete)
	return nil
}

func (s *InvoiceService) requireCustomer(ctx context.Context, id int64) error {
	ok, err := s.customerRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return customerMissing(id)
	}
	return nil
}
