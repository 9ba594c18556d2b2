package repository

import (
	"github.com/nimasrn/customer-billing/internal/model"
)

type CustomerEntity struct {
	ID           int64                    `db:"id"    gorm:"primaryKey;autoIncrement;column:id"`
	Name         string                   `db:"name"  gorm:"column:name;size:200;not null"`
	Email        string                   `db:"email" gorm:"column:email;size:200;not null;uniqueIndex:idx_customers_email"`
	Invoices     []*InvoiceEntity         `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
	PhoneNumbers []*TelephoneNumberEntity `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

// toCustomerEntity copies scalars only; children are written separately.
func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

func toCustomerModel(e *CustomerEntity, shape model.LoadShape) *model.Customer {
	if e == nil {
		return nil
	}
	c := &model.Customer{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Shape: shape,
	}
	if shape == model.ShapeWithRelations {
		c.Invoices = toInvoiceModels(e.Invoices)
		c.PhoneNumbers = toTelephoneNumberModels(e.PhoneNumbers)
	}
	return c
}

func toCustomerModels(entities []*CustomerEntity, shape model.LoadShape) []*model.Customer {
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e, shape)
	}
	return models
}
