package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, persistenceError(err, "create invoice")
	}

	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, persistenceError(err, "get invoice")
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	var entity InvoiceEntity
	err := r.Read(ctx).Where("invoice_number = ?", number).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, persistenceError(err, "get invoice by number")
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) GetAll(ctx context.Context) ([]*model.Invoice, error) {
	var entities []*InvoiceEntity
	if err := r.Read(ctx).Order("id ASC").Find(&entities).Error; err != nil {
		return nil, persistenceError(err, "list invoices")
	}
	return toInvoiceModels(entities), nil
}

func (r *InvoiceRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*model.Invoice, error) {
	var entities []*InvoiceEntity
	err := r.Read(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, persistenceError(err, "list customer invoices")
	}
	return toInvoiceModels(entities), nil
}

// Update rewrites every mutable column, including the owning customer.
func (r *InvoiceRepository) Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	entity := toInvoiceEntity(inv)
	res := r.Write(ctx).
		Model(&InvoiceEntity{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"invoice_number": entity.InvoiceNumber,
			"customer_id":    entity.CustomerID,
			"invoice_date":   entity.InvoiceDate,
			"amount":         entity.Amount,
		})
	if res.Error != nil {
		return nil, persistenceError(res.Error, "update invoice")
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvoiceNotFound
	}
	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.Write(ctx).Where("id = ?", id).Delete(&InvoiceEntity{})
	if res.Error != nil {
		return false, persistenceError(res.Error, "delete invoice")
	}
	return res.RowsAffected > 0, nil
}

func (r *InvoiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.Read(ctx).Model(&InvoiceEntity{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, persistenceError(err, "check invoice")
	}
	return count > 0, nil
}

// InvoiceNumberExists reports whether number is taken by an invoice other
// than excludeID.
func (r *InvoiceRepository) InvoiceNumberExists(ctx context.Context, number string, excludeID *int64) (bool, error) {
	q := r.Read(ctx).Model(&InvoiceEntity{}).Where("invoice_number = ?", number)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, persistenceError(err, "check invoice number")
	}
	return count > 0, nil
}
