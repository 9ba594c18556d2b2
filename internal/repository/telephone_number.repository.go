package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/customer-billing/internal/model"
	"github.com/nimasrn/customer-billing/pkg/pg"
	"gorm.io/gorm"
)

type TelephoneNumberRepository struct {
	*pg.DB
}

func NewTelephoneNumberRepository(db *pg.DB) *TelephoneNumberRepository {
	return &TelephoneNumberRepository{
		db,
	}
}

func (r *TelephoneNumberRepository) Create(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error) {
	entity := toTelephoneNumberEntity(p)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, persistenceError(err, "create telephone number")
	}

	return toTelephoneNumberModel(entity), nil
}

func (r *TelephoneNumberRepository) GetByID(ctx context.Context, id int64) (*model.TelephoneNumber, error) {
	var entity TelephoneNumberEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTelephoneNumberNotFound
	}
	if err != nil {
		return nil, persistenceError(err, "get telephone number")
	}
	return toTelephoneNumberModel(&entity), nil
}

func (r *TelephoneNumberRepository) GetAll(ctx context.Context) ([]*model.TelephoneNumber, error) {
	var entities []*TelephoneNumberEntity
	if err := r.Read(ctx).Order("id ASC").Find(&entities).Error; err != nil {
		return nil, persistenceError(err, "list telephone numbers")
	}
	return toTelephoneNumberModels(entities), nil
}

func (r *TelephoneNumberRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*model.TelephoneNumber, error) {
	var entities []*TelephoneNumberEntity
	err := r.Read(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, persistenceError(err, "list customer telephone numbers")
	}
	return toTelephoneNumberModels(entities), nil
}

func (r *TelephoneNumberRepository) Update(ctx context.Context, p *model.TelephoneNumber) (*model.TelephoneNumber, error) {
	res := r.Write(ctx).
		Model(&TelephoneNumberEntity{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"customer_id": p.CustomerID,
			"type":        string(p.Type),
			"number":      p.Number,
		})
	if res.Error != nil {
		return nil, persistenceError(res.Error, "update telephone number")
	}
	if res.RowsAffected == 0 {
		return nil, ErrTelephoneNumberNotFound
	}
	return p, nil
}

func (r *TelephoneNumberRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.Write(ctx).Where("id = ?", id).Delete(&TelephoneNumberEntity{})
	if res.Error != nil {
		return false, persistenceError(res.Error, "delete telephone number")
	}
	return res.RowsAffected > 0, nil
}

func (r *TelephoneNumberRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.Read(ctx).Model(&TelephoneNumberEntity{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, persistenceError(err, "check telephone number")
	}
	return count > 0, nil
}
