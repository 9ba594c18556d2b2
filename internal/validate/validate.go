// Package validate checks inbound payloads for structural defects before any
// store access. Two interchangeable strategies are provided: struct tags
// (go-playground/validator) and rule builders (ozzo-validation). For the same
// payload both return the same field paths and the same messages.
package validate

import (
	"fmt"
	"strings"
)

// Errors maps a field path such as "invoices[0].amount" to its messages.
// A nil or empty Errors means the payload is valid.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
	}
	return strings.Join(parts, "; ")
}

type Validator interface {
	Validate(payload any) Errors
}

type Strategy string

const (
	StrategyTags  Strategy = "tags"
	StrategyRules Strategy = "rules"
)

// New returns the validator for the given strategy, falling back to tags.
func New(s Strategy) Validator {
	if Strategy(strings.ToLower(string(s))) == StrategyRules {
		return NewRuleValidator()
	}
	return NewTagValidator()
}
