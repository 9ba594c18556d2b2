package repository

import (
	"time"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/shopspring/decimal"
)

type InvoiceEntity struct {
	ID            int64           `db:"id"             gorm:"primaryKey;autoIncrement;column:id"`
	InvoiceNumber string          `db:"invoice_number" gorm:"column:invoice_number;size:50;not null;uniqueIndex:idx_invoices_invoice_number"`
	CustomerID    int64           `db:"customer_id"    gorm:"column:customer_id;not null;index"`
	InvoiceDate   time.Time       `db:"invoice_date"   gorm:"column:invoice_date;type:date;not null"`
	Amount        decimal.Decimal `db:"amount"         gorm:"column:amount;type:decimal(18,2);not null"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

func toInvoiceEntity(m *model.Invoice) *InvoiceEntity {
	if m == nil {
		return nil
	}
	return &InvoiceEntity{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		InvoiceDate:   m.InvoiceDate.Time,
		Amount:        m.Amount.Round(model.AmountPlaces),
	}
}

func toInvoiceEntities(models []*model.Invoice) []*InvoiceEntity {
	entities := make([]*InvoiceEntity, 0, len(models))
	for _, m := range models {
		if m != nil {
			entities = append(entities, toInvoiceEntity(m))
		}
	}
	return entities
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	return &model.Invoice{
		ID:            e.ID,
		InvoiceNumber: e.InvoiceNumber,
		CustomerID:    e.CustomerID,
		InvoiceDate:   model.DateOf(e.InvoiceDate),
		Amount:        e.Amount,
	}
}

func toInvoiceModels(entities []*InvoiceEntity) []*model.Invoice {
	models := make([]*model.Invoice, len(entities))
	for i, e := range entities {
		models[i] = toInvoiceModel(e)
	}
	return models
}
