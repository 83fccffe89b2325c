package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month - выбранный месяц фильтра: 0 (январь) .. 11 (декабрь) или AllMonths.
type Month int

// AllMonths отключает фильтр по дате целиком, включая год и день.
const AllMonths Month = -1

var (
	monthNames = [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	monthShort = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
	allLabel   = "Todos"
)

// CurrentMonth возвращает месяц now в нумерации фильтра
func CurrentMonth(now time.Time) Month {
	return Month(now.Month() - time.January)
}

// Valid проверяет, что значение - допустимый месяц или AllMonths
func (m Month) Valid() bool {
	return m == AllMonths || (m >= 0 && m <= 11)
}

// Label возвращает полное название месяца
func (m Month) Label() string {
	if !m.Valid() || m == AllMonths {
		return allLabel
	}
	return monthNames[m]
}

// Short возвращает сокращенное название месяца
func (m Month) Short() string {
	if !m.Valid() || m == AllMonths {
		return allLabel
	}
	return monthShort[m]
}

func (m Month) String() string {
	return m.Label()
}

// ParseMonth разбирает пользовательский ввод месяца.
// Принимает номер 1-12, название (полное или сокращенное, pt-BR или английское)
// и "all"/"todos"/"tudo" для AllMonths.
func ParseMonth(s string) (Month, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("%w: пустое значение", ErrInvalidMonth)
	}

	switch v {
	case "all", "todos", "tudo":
		return AllMonths, nil
	}

	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %d вне диапазона 1-12", ErrInvalidMonth, n)
		}
		return Month(n - 1), nil
	}

	for i := range monthNames {
		if v == strings.ToLower(monthNames[i]) || v == strings.ToLower(monthShort[i]) {
			return Month(i), nil
		}
		en := time.Month(i + 1).String()
		if v == strings.ToLower(en) || v == strings.ToLower(en[:3]) {
			return Month(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}
