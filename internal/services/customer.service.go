package services

import (
	"context"
	"strconv"

	"github.com/nimasrn/customer-billing/internal/mapper"
	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/nimasrn/customer-billing/pkg/prom"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64, shape model.LoadShape) (*model.Customer, error)
	GetAll(ctx context.Context, shape model.LoadShape) ([]*model.Customer, error)
	GetPaged(ctx context.Context, page, pageSize int, shape model.LoadShape) ([]*model.Customer, int64, error) // results, totalCount
	Search(ctx context.Context, s model.CustomerSearch, shape model.LoadShape) ([]*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error)
}

type InvoiceNumberChecker interface {
	InvoiceNumberExists(ctx context.Context, number string, excludeID *int64) (bool, error)
}

// PageLimits bounds GET /customers paging. DefaultSize applies when the
// caller gives a page but no size.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

var DefaultPageLimits = PageLimits{DefaultSize: 10, MaxSize: 100}

type CustomerService struct {
	customerRepo CustomerRepository
	invoiceRepo  InvoiceNumberChecker
	validator    validate.Validator
	limits       PageLimits
}

func NewCustomerService(customerRepo CustomerRepository, invoiceRepo InvoiceNumberChecker, v validate.Validator, limits PageLimits) *CustomerService {
	if limits.DefaultSize <= 0 {
		limits.DefaultSize = DefaultPageLimits.DefaultSize
	}
	if limits.MaxSize <= 0 {
		limits.MaxSize = DefaultPageLimits.MaxSize
	}
	return &CustomerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		validator:    v,
		limits:       limits,
	}
}

// Create validates the payload, checks the email and every invoice number
// against the store, and persists the aggregate in one unit.
func (s *CustomerService) Create(ctx context.Context, req model.CustomerCreateRequest) (*model.CustomerResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityCustomer, errs)
	}

	taken, err := s.customerRepo.EmailExists(ctx, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(entityCustomer, emailTaken(req.Email))
	}

	seen := make(map[string]struct{}, len(req.Invoices))
	for _, inv := range req.Invoices {
		if _, dup := seen[inv.InvoiceNumber]; dup {
			return nil, conflict(entityInvoice, invoiceNumberTaken(inv.InvoiceNumber))
		}
		seen[inv.InvoiceNumber] = struct{}{}

		taken, err := s.invoiceRepo.InvoiceNumberExists(ctx, inv.InvoiceNumber, nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflict(entityInvoice, invoiceNumberTaken(inv.InvoiceNumber))
		}
	}

	created, err := s.customerRepo.Create(ctx, mapper.NewCustomer(req))
	if err != nil {
		msg := emailTaken(req.Email)
		if len(req.Invoices) > 0 {
			msg = "A customer with email '" + req.Email + "' or one of its invoice numbers already exists."
		}
		return nil, storeConflict(err, entityCustomer, msg)
	}
	prom.AddEntityWrite(entityCustomer, prom.OpCreate)

	resp := mapper.ToCustomerResponse(created)
	return &resp, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*model.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id, model.ShapeWithRelations)
	if err != nil {
		return nil, err
	}
	resp := mapper.ToCustomerResponse(c)
	return &resp, nil
}

func (s *CustomerService) List(ctx context.Context) ([]model.CustomerResponse, error) {
	customers, err := s.customerRepo.GetAll(ctx, model.ShapeWithRelations)
	if err != nil {
		return nil, err
	}
	return mapper.ToCustomerResponses(customers), nil
}

// Page returns one page of customers. A nil size means the default size;
// an explicit size must be within 1..MaxSize.
func (s *CustomerService) Page(ctx context.Context, page int, size *int) (*model.CustomerPage, error) {
	pageSize := s.limits.DefaultSize
	if size != nil {
		pageSize = *size
	}

	errs := validate.Errors{}
	if page < 1 {
		errs.Add("page", validate.MsgGreaterThan("0"))
	}
	switch {
	case pageSize < 1:
		errs.Add("pageSize", validate.MsgGreaterThan("0"))
	case pageSize > s.limits.MaxSize:
		errs.Add("pageSize", validate.MsgAtMost(strconv.Itoa(s.limits.MaxSize)))
	}
	if !errs.Empty() {
		return nil, validationFailed(entityCustomer, errs)
	}

	customers, total, err := s.customerRepo.GetPaged(ctx, page, pageSize, model.ShapeWithRelations)
	if err != nil {
		return nil, err
	}
	p := mapper.ToCustomerPage(customers, total, page, pageSize)
	return &p, nil
}

func (s *CustomerService) Search(ctx context.Context, criteria model.CustomerSearch) ([]model.CustomerResponse, error) {
	customers, err := s.customerRepo.Search(ctx, criteria, model.ShapeWithRelations)
	if err != nil {
		return nil, err
	}
	return mapper.ToCustomerResponses(customers), nil
}

// Update reloads the customer, overwrites name and email, and returns the
// reloaded aggregate. Concurrent updates are last-writer-wins.
func (s *CustomerService) Update(ctx context.Context, id int64, req model.CustomerUpdateRequest) (*model.CustomerResponse, error) {
	if errs := s.validator.Validate(req); !errs.Empty() {
		return nil, validationFailed(entityCustomer, errs)
	}

	current, err := s.customerRepo.GetByID(ctx, id, model.ShapeSummary)
	if err != nil {
		return nil, err
	}

	taken, err := s.customerRepo.EmailExists(ctx, req.Email, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(entityCustomer, emailTaken(req.Email))
	}

	mapper.ApplyCustomerUpdate(current, req)
	if _, err := s.customerRepo.Update(ctx, current); err != nil {
		return nil, storeConflict(err, entityCustomer, emailTaken(req.Email))
	}
	prom.AddEntityWrite(entityCustomer, prom.OpUpdate)

	return s.Get(ctx, id)
}

// Delete removes the customer with its invoices and telephone numbers.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return customerMissing(id)
	}
	prom.AddEntityWrite(entityCustomer, prom.OpDelete)
	return nil
}
