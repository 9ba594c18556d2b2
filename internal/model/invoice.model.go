package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/shopspring/decimal"
)

const (
	InvoiceNumberMaxLen = 50
	InvoiceNumberPrefix = "INV"
	AmountPlaces        = 2
)

var invoiceNumberPrefixPattern = regexp.MustCompile("^" + InvoiceNumberPrefix)

type Invoice struct {
	ID            int64
	InvoiceNumber string
	CustomerID    int64
	InvoiceDate   Date
	Amount        decimal.Decimal
}

// InvoiceDetailsRequest is an invoice without its owner: nested in a customer
// create, or the body of an invoice update.
type InvoiceDetailsRequest struct {
	InvoiceNumber string           `json:"invoiceNumber" validate:"required,max=50,startswith=INV"`
	InvoiceDate   *Date            `json:"invoiceDate"   validate:"required"`
	Amount        *decimal.Decimal `json:"amount"        validate:"required,gte=0"`
}

func (r InvoiceDetailsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.InvoiceNumber, invoiceNumberRules()...),
		validation.Field(&r.InvoiceDate, validation.Required.Error(validate.MsgRequired)),
		validation.Field(&r.Amount, amountRules()...),
	)
}

type InvoiceCreateRequest struct {
	CustomerID    int64            `json:"customerId"    validate:"required,gt=0"`
	InvoiceNumber string           `json:"invoiceNumber" validate:"required,max=50,startswith=INV"`
	InvoiceDate   *Date            `json:"invoiceDate"   validate:"required"`
	Amount        *decimal.Decimal `json:"amount"        validate:"required,gte=0"`
}

func (r InvoiceCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerID, customerRefRules()...),
		validation.Field(&r.InvoiceNumber, invoiceNumberRules()...),
		validation.Field(&r.InvoiceDate, validation.Required.Error(validate.MsgRequired)),
		validation.Field(&r.Amount, amountRules()...),
	)
}

func (r InvoiceCreateRequest) Details() InvoiceDetailsRequest {
	return InvoiceDetailsRequest{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		Amount:        r.Amount,
	}
}

func invoiceNumberRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.RuneLength(0, InvoiceNumberMaxLen).Error(validate.MsgMaxLength(InvoiceNumberMaxLen)),
		validation.Match(invoiceNumberPrefixPattern).Error(validate.MsgPrefix(InvoiceNumberPrefix)),
	}
}

func amountRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.By(nonNegativeAmount),
	}
}

func customerRefRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.Min(int64(1)).Error(validate.MsgGreaterThan("0")),
	}
}

func nonNegativeAmount(value interface{}) error {
	amount, ok := value.(*decimal.Decimal)
	if !ok || amount == nil {
		return nil
	}
	if amount.IsNegative() {
		return validation.NewError("validation_amount_negative", validate.MsgAtLeast("0"))
	}
	return nil
}

type InvoiceResponse struct {
	ID            int64  `json:"id"`
	CustomerID    int64  `json:"customerId"`
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   Date   `json:"invoiceDate"`
	Amount        Money  `json:"amount"`
}
