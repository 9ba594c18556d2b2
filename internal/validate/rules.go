package validate

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RuleValidator runs the payload's own Validate method, which composes
// ozzo-validation rules, and flattens the nested result into field paths.
type RuleValidator struct{}

func NewRuleValidator() *RuleValidator {
	return &RuleValidator{}
}

func (RuleValidator) Validate(payload any) Errors {
	v, ok := payload.(validation.Validatable)
	if !ok {
		return Errors{"": {"payload does not declare validation rules"}}
	}
	err := v.Validate()
	if err == nil {
		return nil
	}

	errs := Errors{}
	flatten("", err, errs)
	return errs
}

func flatten(prefix string, err error, out Errors) {
	nested, ok := err.(validation.Errors)
	if !ok {
		out.Add(prefix, err.Error())
		return
	}
	for key, child := range nested {
		if child == nil {
			continue
		}
		flatten(joinPath(prefix, key), child, out)
	}
}

func joinPath(prefix, key string) string {
	if _, err := strconv.Atoi(key); err == nil {
		return prefix + "[" + key + "]"
	}
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
