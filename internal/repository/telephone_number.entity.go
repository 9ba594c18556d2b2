package repository

import (
	"github.com/nimasrn/customer-billing/internal/model"
)

type TelephoneNumberEntity struct {
	ID         int64  `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64  `db:"customer_id" gorm:"column:customer_id;not null;index"`
	Type       string `db:"type"        gorm:"column:type;size:20;not null"`
	Number     string `db:"number"      gorm:"column:number;size:50;not null"`
}

func (TelephoneNumberEntity) TableName() string {
	return "telephone_numbers"
}

func toTelephoneNumberEntity(m *model.TelephoneNumber) *TelephoneNumberEntity {
	if m == nil {
		return nil
	}
	return &TelephoneNumberEntity{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Type:       string(m.Type),
		Number:     m.Number,
	}
}

func toTelephoneNumberEntities(models []*model.TelephoneNumber) []*TelephoneNumberEntity {
	entities := make([]*TelephoneNumberEntity, 0, len(models))
	for _, m := range models {
		if m != nil {
			entities = append(entities, toTelephoneNumberEntity(m))
		}
	}
	return entities
}

func toTelephoneNumberModel(e *TelephoneNumberEntity) *model.TelephoneNumber {
	if e == nil {
		return nil
	}
	return &model.TelephoneNumber{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		Type:       model.PhoneType(e.Type),
		Number:     e.Number,
	}
}

func toTelephoneNumberModels(entities []*TelephoneNumberEntity) []*model.TelephoneNumber {
	models := make([]*model.TelephoneNumber, len(entities))
	for i, e := range entities {
		models[i] = toTelephoneNumberModel(e)
	}
	return models
}
