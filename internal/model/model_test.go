package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nimasrn/customer-billing/internal/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &d))
	assert.Equal(t, NewDate(2024, time.February, 29), d)

	for in, want := range map[string]string{
		`"2024-02-29T23:30:00-02:00"`: "2024-02-29",
		`"2024-01-15T23:30:00-05:00"`: "2024-01-15",
		`"2024-01-15T00:30:00+09:00"`: "2024-01-15",
		`"2024-01-15T12:00:00Z"`:      "2024-01-15",
	} {
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.Equal(t, want, d.String(), in)
	}

	b, err := json.Marshal(NewDate(2024, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"05/01/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240105`), &d))
}

func TestMoney_JSON(t *testing.T) {
	for in, want := range map[string]string{
		"120.5":   "120.50",
		"0":       "0.00",
		"10.005":  "10.01",
		"-3.1":    "-3.10",
		"1234567": "1234567.00",
	} {
		b, err := json.Marshal(struct {
			Amount Money `json:"amount"`
		}{MoneyOf(decimal.RequireFromString(in))})
		require.NoError(t, err)
		assert.Equal(t, `{"amount":`+want+`}`, string(b), in)
	}

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`120.50`), &m))
	assert.True(t, m.Equal(decimal.RequireFromString("120.5")))
	require.NoError(t, json.Unmarshal([]byte(`"7.25"`), &m))
	assert.Equal(t, "7.25", m.String())
}

func TestCustomer_Balance(t *testing.T) {
	var nilCustomer *Customer
	assert.True(t, nilCustomer.Balance().IsZero())
	assert.False(t, nilCustomer.RelationsLoaded())

	c := &Customer{
		Invoices: []*Invoice{
			{Amount: decimal.RequireFromString("0.10")},
			nil,
			{Amount: decimal.RequireFromString("0.20")},
		},
		Shape: ShapeWithRelations,
	}
	assert.True(t, c.Balance().Equal(decimal.RequireFromString("0.3")))
	assert.True(t, c.RelationsLoaded())
	assert.Equal(t, "with_relations", c.Shape.String())
	assert.Equal(t, "summary", ShapeSummary.String())
}

func TestError_Kinds(t *testing.T) {
	cause := errors.New("driver: bad connection")
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", NewValidationError(validate.Errors{"name": {validate.MsgRequired}}), ErrValidation},
		{"not found", NewNotFoundError("Customer with id %d not found.", 3), ErrNotFound},
		{"conflict", NewConflictError("taken"), ErrConflict},
		{"persistence", NewPersistenceError(cause, "get customer"), ErrPersistence},
		{"malformed", NewMalformedRequestError("Request body is required.", nil), ErrMalformedRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			for _, other := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrPersistence, ErrMalformedRequest} {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}

	p := NewPersistenceError(cause, "get customer")
	assert.ErrorIs(t, p, cause)
	assert.Equal(t, "get customer: driver: bad connection", p.Error())
	assert.Equal(t, "Customer with id 3 not found.", NewNotFoundError("Customer with id %d not found.", 3).Error())
}

func TestCustomerSearch_IsEmpty(t *testing.T) {
	assert.True(t, CustomerSearch{}.IsEmpty())
	name := "abc"
	assert.False(t, CustomerSearch{Name: &name}.IsEmpty())
}

func TestPhoneType_Valid(t *testing.T) {
	assert.True(t, PhoneTypeDirectDial.Valid())
	assert.False(t, PhoneType("mobile").Valid())
}
