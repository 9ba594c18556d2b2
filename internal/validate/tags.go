package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const tagEmail = "emailaddr"

// TagValidator reads `validate:"..."` struct tags.
type TagValidator struct {
	v *validator.Validate
}

func NewTagValidator() *TagValidator {
	v := validator.New()

	// report json names so paths match the wire payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	})

	return &TagValidator{v: v}
}

func (t *TagValidator) Validate(payload any) Errors {
	err := t.v.Struct(payload)
	if err == nil {
		return nil
	}

	errs := Errors{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe.Namespace()), tagMessage(fe))
	}
	return errs
}

// fieldPath drops the root struct name: "CustomerCreateRequest.invoices[0].amount" -> "invoices[0].amount".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case tagEmail:
		return MsgEmail
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		return MsgMaxLength(n)
	case "startswith":
		return MsgPrefix(fe.Param())
	case "gt":
		return MsgGreaterThan(fe.Param())
	case "gte":
		return MsgAtLeast(fe.Param())
	case "oneof":
		return MsgOneOf(strings.Fields(fe.Param())...)
	default:
		return "is invalid"
	}
}
