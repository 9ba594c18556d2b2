package handlers

import (
	"context"

	"github.com/nimasrn/customer-billing/internal/model"
	xhttp "github.com/nimasrn/customer-billing/pkg/http"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, req model.CustomerCreateRequest) (*model.CustomerResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Get(ctx context.Context, id int64) (*model.CustomerResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context) ([]model.CustomerResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Page(ctx context.Context, page int, pageSize *int) (*model.CustomerPage, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerPage), args.Error(1)
}

func (m *MockCustomerService) Search(ctx context.Context, criteria model.CustomerSearch) ([]model.CustomerResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id int64, req model.CustomerUpdateRequest) (*model.CustomerResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, req model.InvoiceCreateRequest) (*model.InvoiceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*model.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context) ([]model.InvoiceResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) ListByCustomer(ctx context.Context, customerID int64) ([]model.InvoiceResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, id int64, req model.InvoiceDetailsRequest) (*model.InvoiceResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InvoiceResponse), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTelephoneNumberService struct {
	mock.Mock
}

func (m *MockTelephoneNumberService) Create(ctx context.Context, req model.TelephoneNumberCreateRequest) (*model.TelephoneNumberResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumberResponse), args.Error(1)
}

func (m *MockTelephoneNumberService) Get(ctx context.Context, id int64) (*model.TelephoneNumberResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumberResponse), args.Error(1)
}

func (m *MockTelephoneNumberService) List(ctx context.Context) ([]model.TelephoneNumberResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TelephoneNumberResponse), args.Error(1)
}

func (m *MockTelephoneNumberService) ListByCustomer(ctx context.Context, customerID int64) ([]model.TelephoneNumberResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TelephoneNumberResponse), args.Error(1)
}

func (m *MockTelephoneNumberService) Update(ctx context.Context, id int64, req model.TelephoneNumberDetailsRequest) (*model.TelephoneNumberResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TelephoneNumberResponse), args.Error(1)
}

func (m *MockTelephoneNumberService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Get(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != nil {
		req.SetBody(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	return ctx
}

func withID(ctx *xhttp.RequestCtx, id string) *xhttp.RequestCtx {
	ctx.SetUserValue("id", id)
	return ctx
}
