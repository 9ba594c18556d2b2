package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/shopspring/decimal"
)

const (
	CustomerNameMaxLen  = 200
	CustomerEmailMaxLen = 200
)

// Customer owns its invoices and telephone numbers; deleting it deletes them.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	Invoices     []*Invoice
	PhoneNumbers []*TelephoneNumber

	// Shape records what the read that produced this value loaded.
	Shape LoadShape
}

// Balance is the sum of the loaded invoice amounts, zero when there are none.
// It is only meaningful when Shape is ShapeWithRelations; it is never stored.
func (c *Customer) Balance() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, inv := range c.Invoices {
		if inv != nil {
			total = total.Add(inv.Amount)
		}
	}
	return total
}

// RelationsLoaded reports whether the child collections reflect the store.
func (c *Customer) RelationsLoaded() bool {
	return c != nil && c.Shape == ShapeWithRelations
}

type CustomerCreateRequest struct {
	Name         string                          `json:"name"         validate:"required,max=200"`
	Email        string                          `json:"email"        validate:"required,max=200,emailaddr"`
	Invoices     []InvoiceDetailsRequest         `json:"invoices"     validate:"dive"`
	PhoneNumbers []TelephoneNumberDetailsRequest `json:"phoneNumbers" validate:"dive"`
}

func (r CustomerCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, customerNameRules()...),
		validation.Field(&r.Email, customerEmailRules()...),
		validation.Field(&r.Invoices),
		validation.Field(&r.PhoneNumbers),
	)
}

// CustomerUpdateRequest carries the scalar fields a PUT may change.
type CustomerUpdateRequest struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Email string `json:"email" validate:"required,max=200,emailaddr"`
}

func (r CustomerUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, customerNameRules()...),
		validation.Field(&r.Email, customerEmailRules()...),
	)
}

func customerNameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.RuneLength(0, CustomerNameMaxLen).Error(validate.MsgMaxLength(CustomerNameMaxLen)),
	}
}

func customerEmailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.RuneLength(0, CustomerEmailMaxLen).Error(validate.MsgMaxLength(CustomerEmailMaxLen)),
		validation.Match(validate.EmailPattern).Error(validate.MsgEmail),
	}
}

type CustomerResponse struct {
	ID           int64                     `json:"id"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	Balance      Money                     `json:"balance"`
	Invoices     []InvoiceResponse         `json:"invoices"`
	PhoneNumbers []TelephoneNumberResponse `json:"phoneNumbers"`
}

// CustomerSearch criteria are ANDed; nil criteria are not applied.
// Name and Email match case-insensitive substrings.
type CustomerSearch struct {
	Name       *string
	Email      *string
	MinBalance *decimal.Decimal
}

func (s CustomerSearch) IsEmpty() bool {
	return s.Name == nil && s.Email == nil && s.MinBalance == nil
}

type CustomerPage struct {
	Items      []CustomerResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}
