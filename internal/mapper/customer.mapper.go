// Package mapper converts between wire payloads, model entities and
// responses. It performs no I/O and no validation.
package mapper

import (
	"github.com/nimasrn/customer-billing/internal/model"
)

// NewCustomer builds an unsaved customer. Children keep CustomerID zero; the
// repository assigns it when the aggregate is created.
func NewCustomer(req model.CustomerCreateRequest) *model.Customer {
	c := &model.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Invoices:     make([]*model.Invoice, 0, len(req.Invoices)),
		PhoneNumbers: make([]*model.TelephoneNumber, 0, len(req.PhoneNumbers)),
		Shape:        model.ShapeWithRelations,
	}
	for _, inv := range req.Invoices {
		c.Invoices = append(c.Invoices, NewInvoice(0, inv))
	}
	for _, p := range req.PhoneNumbers {
		c.PhoneNumbers = append(c.PhoneNumbers, NewTelephoneNumber(0, p))
	}
	return c
}

// ApplyCustomerUpdate overwrites name and email only.
func ApplyCustomerUpdate(c *model.Customer, req model.CustomerUpdateRequest) {
	c.Name = req.Name
	c.Email = req.Email
}

func ToCustomerResponse(c *model.Customer) model.CustomerResponse {
	resp := model.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Balance:      model.MoneyOf(c.Balance()),
		Invoices:     []model.InvoiceResponse{},
		PhoneNumbers: []model.TelephoneNumberResponse{},
	}
	if c.RelationsLoaded() {
		resp.Invoices = ToInvoiceResponses(c.Invoices)
		resp.PhoneNumbers = ToTelephoneNumberResponses(c.PhoneNumbers)
	}
	return resp
}

func ToCustomerResponses(customers []*model.Customer) []model.CustomerResponse {
	out := make([]model.CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = ToCustomerResponse(c)
	}
	return out
}

func ToCustomerPage(customers []*model.Customer, total int64, page, pageSize int) model.CustomerPage {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return model.CustomerPage{
		Items:      ToCustomerResponses(customers),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
