// Package money разбирает и форматирует денежные суммы.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const Currency = "R$"

var (
	ErrEmpty    = errors.New("amount is empty")
	ErrInvalid  = errors.New("amount is not a number")
	ErrNegative = errors.New("amount is negative")
)

// Parse разбирает сумму, введенную пользователем. Первая запятая считается
// десятичным разделителем ("150,50" -> 150.50). Значение не округляется.
func Parse(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return decimal.Zero, ErrEmpty
	}

	v = strings.Replace(v, ",", ".", 1)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegative, d.String())
	}

	return d, nil
}

// Fixed - сумма с двумя знаками после точки, без валюты
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format - сумма для отображения: "R$ 150.00"
func Format(d decimal.Decimal) string {
	return Currency + " " + Fixed(d)
}
