package mapper

import (
	"testing"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewCustomer(t *testing.T) {
	d := model.NewDate(2024, 3, 1)
	req := model.CustomerCreateRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Invoices: []model.InvoiceDetailsRequest{
			{InvoiceNumber: "INV-1", InvoiceDate: &d, Amount: amount("10.005")},
			{InvoiceNumber: "INV-2", InvoiceDate: &d, Amount: amount("5")},
		},
		PhoneNumbers: []model.TelephoneNumberDetailsRequest{{Type: model.PhoneTypeMobile, Number: "0770"}},
	}

	c := NewCustomer(req)

	assert.Zero(t, c.ID)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "alice@example.com", c.Email)
	require.Len(t, c.Invoices, 2)
	require.Len(t, c.PhoneNumbers, 1)
	assert.Zero(t, c.Invoices[0].CustomerID)
	assert.Zero(t, c.PhoneNumbers[0].CustomerID)
	assert.Equal(t, d, c.Invoices[0].InvoiceDate)
	assert.True(t, c.Invoices[0].Amount.Equal(decimal.RequireFromString("10.01")))
	assert.True(t, c.Balance().Equal(decimal.RequireFromString("15.01")))
}

func TestApplyCustomerUpdate_KeepsChildren(t *testing.T) {
	c := &model.Customer{
		ID:       7,
		Name:     "Old",
		Email:    "old@example.com",
		Invoices: []*model.Invoice{{ID: 1, Amount: decimal.NewFromInt(3)}},
		Shape:    model.ShapeWithRelations,
	}

	ApplyCustomerUpdate(c, model.CustomerUpdateRequest{Name: "New", Email: "new@example.com"})

	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "New", c.Name)
	assert.Equal(t, "new@example.com", c.Email)
	assert.Len(t, c.Invoices, 1)
}

func TestToCustomerResponse(t *testing.T) {
	c := &model.Customer{
		ID:    1,
		Name:  "Alice",
		Email: "alice@example.com",
		Invoices: []*model.Invoice{
			{ID: 1, CustomerID: 1, InvoiceNumber: "INV-1", Amount: decimal.RequireFromString("100.25")},
			{ID: 2, CustomerID: 1, InvoiceNumber: "INV-2", Amount: decimal.RequireFromString("0.25")},
		},
		PhoneNumbers: []*model.TelephoneNumber{{ID: 3, CustomerID: 1, Type: model.PhoneTypeWork, Number: "1"}},
		Shape:        model.ShapeWithRelations,
	}

	t.Run("with relations", func(t *testing.T) {
		resp := ToCustomerResponse(c)
		assert.True(t, resp.Balance.Equal(decimal.RequireFromString("100.5")))
		assert.Len(t, resp.Invoices, 2)
		assert.Equal(t, "INV-2", resp.Invoices[1].InvoiceNumber)
		assert.Len(t, resp.PhoneNumbers, 1)
		assert.Equal(t, model.PhoneTypeWork, resp.PhoneNumbers[0].Type)
	})

	t.Run("summary leaves collections empty", func(t *testing.T) {
		summary := &model.Customer{ID: 2, Name: "Bob", Email: "bob@example.com"}
		resp := ToCustomerResponse(summary)
		assert.NotNil(t, resp.Invoices)
		assert.Empty(t, resp.Invoices)
		assert.Empty(t, resp.PhoneNumbers)
		assert.True(t, resp.Balance.IsZero())
	})
}

func TestToCustomerPage(t *testing.T) {
	page := ToCustomerPage([]*model.Customer{{ID: 11}}, 21, 3, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(21), page.Total)
	assert.Len(t, page.Items, 1)

	empty := ToCustomerPage(nil, 0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestInvoiceMapping(t *testing.T) {
	d := model.NewDate(2024, 2, 29)
	inv := NewInvoice(4, model.InvoiceDetailsRequest{InvoiceNumber: "INV-9", InvoiceDate: &d, Amount: amount("12")})
	assert.Equal(t, int64(4), inv.CustomerID)

	inv.ID = 9
	later := model.NewDate(2024, 3, 1)
	ApplyInvoiceUpdate(inv, model.InvoiceDetailsRequest{InvoiceNumber: "INV-10", InvoiceDate: &later, Amount: amount("1.5")})

	resp := ToInvoiceResponse(inv)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, int64(4), resp.CustomerID)
	assert.Equal(t, "INV-10", resp.InvoiceNumber)
	assert.Equal(t, later, resp.InvoiceDate)
	assert.True(t, resp.Amount.Equal(decimal.RequireFromString("1.5")))
	assert.Len(t, ToInvoiceResponses([]*model.Invoice{inv, nil}), 1)
}

func TestTelephoneNumberMapping(t *testing.T) {
	p := NewTelephoneNumber(2, model.TelephoneNumberDetailsRequest{Type: model.PhoneTypeMobile, Number: "0770"})
	p.ID = 5
	ApplyTelephoneNumberUpdate(p, model.TelephoneNumberDetailsRequest{Type: model.PhoneTypeDirectDial, Number: "0207"})

	assert.Equal(t, model.TelephoneNumberResponse{ID: 5, CustomerID: 2, Type: model.PhoneTypeDirectDial, Number: "0207"},
		ToTelephoneNumberResponse(p))
}
