package fixtures

import (
	"fmt"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/shopspring/decimal"
)

var InvoiceDate = model.NewDate(2024, 1, 15)

func Amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func NewInvoiceDetails(number, amount string) model.InvoiceDetailsRequest {
	d := InvoiceDate
	return model.InvoiceDetailsRequest{InvoiceNumber: number, InvoiceDate: &d, Amount: Amount(amount)}
}

func NewInvoiceCreateRequest(customerID int64, number, amount string) model.InvoiceCreateRequest {
	d := NewInvoiceDetails(number, amount)
	return model.InvoiceCreateRequest{
		CustomerID:    customerID,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   d.InvoiceDate,
		Amount:        d.Amount,
	}
}

// NewCustomerCreateRequest builds a customer with one invoice per amount,
// numbered INV-<tag>-<n>, and a single mobile number.
func NewCustomerCreateRequest(name, email, tag string, amounts ...string) model.CustomerCreateRequest {
	req := model.CustomerCreateRequest{
		Name:         name,
		Email:        email,
		PhoneNumbers: []model.TelephoneNumberDetailsRequest{{Type: model.PhoneTypeMobile, Number: "07700900" + tag}},
	}
	for i, a := range amounts {
		req.Invoices = append(req.Invoices, NewInvoiceDetails(fmt.Sprintf("INV-%s-%d", tag, i+1), a))
	}
	return req
}
