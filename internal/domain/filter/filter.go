// Package filter содержит клиентскую фильтрацию и агрегацию списков записей.
// Все функции чистые: полный список никогда не изменяется.
package filter

import (
	"time"

	"github.com/shopspring/decimal"
)

// Criteria - текущие значения фильтров экрана
type Criteria struct {
	Query string `json:"query"`
	Month Month  `json:"month"`
	Day   string `json:"day"`
}

// DefaultCriteria - фильтры при открытии экрана: текущий месяц, без текста и дня
func DefaultCriteria(now time.Time) Criteria {
	return Criteria{Month: CurrentMonth(now)}
}

// Config описывает вид записи: какие поля участвуют в поиске и агрегации.
type Config[T any] struct {
	Fields func(T) Fields
	Date   func(T) time.Time
	Amount func(T) decimal.Decimal
	// Paid задается только для видов записей с разбивкой оплачено/к оплате
	Paid func(T) bool
	// Location - часовой пояс для сравнения месяца и года, по умолчанию time.Local
	Location *time.Location
}

func (c Config[T]) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Match применяет все предикаты к одной записи
func (c Config[T]) Match(item T, crit Criteria, now time.Time) bool {
	if !TextMatch(c.Fields(item), crit.Query) {
		return false
	}
	return DateMatch(c.Date(item), crit.Month, crit.Day, now.In(c.location()))
}

// Apply возвращает новый срез записей complete, удовлетворяющих crit.
// Порядок записей сохраняется.
func Apply[T any](cfg Config[T], complete []T, crit Criteria, now time.Time) []T {
	filtered := make([]T, 0, len(complete))
	for _, item := range complete {
		if cfg.Match(item, crit, now) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Summary - агрегаты по отфильтрованному списку
type Summary struct {
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Received decimal.Decimal `json:"received"`
	Pending  decimal.Decimal `json:"pending"`
	HasSplit bool            `json:"has_split"`
}

// Summarize считает сумму и, если у вида записей есть признак оплаты, разбивку.
func Summarize[T any](cfg Config[T], filtered []T) Summary {
	s := Summary{
		Count: len(filtered),
		Total: Total(filtered, cfg.Amount),
	}

	if cfg.Paid != nil {
		s.HasSplit = true
		s.Received, s.Pending = Split(filtered, cfg.Amount, cfg.Paid)
	}

	return s
}

// Total суммирует amount по всем записям в порядке списка
func Total[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(amount(item))
	}
	return sum
}

// Split считает полученные и ожидаемые суммы.
// Каждая часть считается отдельным проходом.
func Split[T any](items []T, amount func(T) decimal.Decimal, paid func(T) bool) (received, pending decimal.Decimal) {
	received = sumWhere(items, amount, paid)
	pending = sumWhere(items, amount, func(item T) bool { return !paid(item) })
	return received, pending
}

func sumWhere[T any](items []T, amount func(T) decimal.Decimal, keep func(T) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if keep(item) {
			sum = sum.Add(amount(item))
		}
	}
	return sum
}
