package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/nimasrn/customer-billing/internal/validate"
)

const TelephoneNumberMaxLen = 50

type PhoneType string

const (
	PhoneTypeMobile     PhoneType = "Mobile"
	PhoneTypeWork       PhoneType = "Work"
	PhoneTypeDirectDial PhoneType = "DirectDial"
)

var PhoneTypes = []PhoneType{PhoneTypeMobile, PhoneTypeWork, PhoneTypeDirectDial}

func (t PhoneType) Valid() bool {
	for _, v := range PhoneTypes {
		if t == v {
			return true
		}
	}
	return false
}

type TelephoneNumber struct {
	ID         int64
	CustomerID int64
	Type       PhoneType
	Number     string
}

type TelephoneNumberDetailsRequest struct {
	Type   PhoneType `json:"type"   validate:"required,oneof=Mobile Work DirectDial"`
	Number string    `json:"number" validate:"required,max=50"`
}

func (r TelephoneNumberDetailsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, phoneTypeRules()...),
		validation.Field(&r.Number, phoneNumberRules()...),
	)
}

type TelephoneNumberCreateRequest struct {
	CustomerID int64     `json:"customerId" validate:"required,gt=0"`
	Type       PhoneType `json:"type"       validate:"required,oneof=Mobile Work DirectDial"`
	Number     string    `json:"number"     validate:"required,max=50"`
}

func (r TelephoneNumberCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerID, customerRefRules()...),
		validation.Field(&r.Type, phoneTypeRules()...),
		validation.Field(&r.Number, phoneNumberRules()...),
	)
}

func (r TelephoneNumberCreateRequest) Details() TelephoneNumberDetailsRequest {
	return TelephoneNumberDetailsRequest{Type: r.Type, Number: r.Number}
}

func phoneTypeRules() []validation.Rule {
	names := make([]string, len(PhoneTypes))
	allowed := make([]interface{}, len(PhoneTypes))
	for i, t := range PhoneTypes {
		names[i] = string(t)
		allowed[i] = t
	}
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.In(allowed...).Error(validate.MsgOneOf(names...)),
	}
}

func phoneNumberRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(validate.MsgRequired),
		validation.RuneLength(0, TelephoneNumberMaxLen).Error(validate.MsgMaxLength(TelephoneNumberMaxLen)),
	}
}

type TelephoneNumberResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Type       PhoneType `json:"type"`
	Number     string    `json:"number"`
}
