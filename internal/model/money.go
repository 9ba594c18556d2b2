package model

import "github.com/shopspring/decimal"

// Money is an amount as it leaves the service: rounded to AmountPlaces and
// written as a bare JSON number with exactly two decimals (120.50).
type Money struct {
	decimal.Decimal
}

func MoneyOf(d decimal.Decimal) Money {
	return Money{d.Round(AmountPlaces)}
}

func (m Money) String() string {
	return m.StringFixed(AmountPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
