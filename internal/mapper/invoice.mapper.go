package mapper

import (
	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/shopspring/decimal"
)

func NewInvoice(customerID int64, req model.InvoiceDetailsRequest) *model.Invoice {
	inv := &model.Invoice{
		CustomerID:    customerID,
		InvoiceNumber: req.InvoiceNumber,
	}
	if req.InvoiceDate != nil {
		inv.InvoiceDate = *req.InvoiceDate
	}
	inv.Amount = amountOf(req.Amount)
	return inv
}

// ApplyInvoiceUpdate overwrites number, date and amount; the owner and id are kept.
func ApplyInvoiceUpdate(inv *model.Invoice, req model.InvoiceDetailsRequest) {
	inv.InvoiceNumber = req.InvoiceNumber
	if req.InvoiceDate != nil {
		inv.InvoiceDate = *req.InvoiceDate
	}
	if req.Amount != nil {
		inv.Amount = amountOf(req.Amount)
	}
}

func ToInvoiceResponse(inv *model.Invoice) model.InvoiceResponse {
	return model.InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		Amount:        model.MoneyOf(inv.Amount),
	}
}

func ToInvoiceResponses(invoices []*model.Invoice) []model.InvoiceResponse {
	out := make([]model.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if inv != nil {
			out = append(out, ToInvoiceResponse(inv))
		}
	}
	return out
}

func amountOf(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return d.Round(model.AmountPlaces)
}
