package services

import (
	"context"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.Customer) *model.Customer); ok {
		return fn(ctx, c), args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64, shape model.LoadShape) (*model.Customer, error) {
	args := m.Called(ctx, id, shape)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context, shape model.LoadShape) ([]*model.Customer, error) {
	args := m.Called(ctx, shape)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetPaged(ctx context.Context, page, pageSize int, shape model.LoadShape) ([]*model.Customer, int64, error) {
	args := m.Called(ctx, page, pageSize, shape)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Search(ctx context.Context, s model.CustomerSearch, shape model.LoadShape) ([]*model.Customer, error) {
	args := m.Called(ctx, s, shape)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.Customer) *model.Customer); ok {
		return fn(ctx, c), args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetAll(ctx context.Context) ([]*model.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*model.Invoice, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.Invoice) *model.Invoice); ok {
		return fn(ctx, inv), args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) InvoiceNumberExists(ctx context.Context, number string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockTelephoneNumberRepository struct {
	mock.Mock
}

func (m *MockTelephoneNumberRepository) Create(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumber), args.Error(1)
}

func (m *MockTelephoneNumberRepository) GetByID(ctx context.Context, id int64) (*model.TelephoneNumber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumber), args.Error(1)
}

func (m *MockTelephoneNumberRepository) GetAll(ctx context.Context) ([]*model.TelephoneNumber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TelephoneNumber), args.Error(1)
}

func (m *MockTelephoneNumberRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*model.TelephoneNumber, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TelephoneNumber), args.Error(1)
}

func (m *MockTelephoneNumberRepository) Update(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *model.TelephoneNumber) *model.TelephoneNumber); ok {
		return fn(ctx, p), args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumber), args.Error(1)
}

func (m *MockTelephoneNumberRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
