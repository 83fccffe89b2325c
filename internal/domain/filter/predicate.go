package filter

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Fields - текстовые поля записи, по которым идет поиск.
// Secondary пустой у записей, где поиск только по основному полю.
type Fields struct {
	Primary   string
	Secondary string
}

// TextMatch проверяет вхождение запроса (без учета регистра) в поля записи.
// Пустой запрос совпадает с любой записью.
func TextMatch(f Fields, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(f.Primary), q) {
		return true
	}

	if strings.TrimSpace(f.Secondary) == "" {
		return false
	}

	return strings.Contains(strings.ToLower(f.Secondary), q)
}

// DateMatch проверяет дату записи против фильтра месяца и дня.
//
// Месяц и год сравниваются в часовом поясе now, год всегда текущий.
// AllMonths пропускает любую дату, фильтр дня при этом игнорируется.
// Непустой day, из которого не удается извлечь число, не совпадает ни с одной записью.
func DateMatch(ts time.Time, month Month, day string, now time.Time) bool {
	if month == AllMonths {
		return true
	}

	local := ts.In(now.Location())
	if Month(local.Month()-time.January) != month || local.Year() != now.Year() {
		return false
	}

	if strings.TrimSpace(day) == "" {
		return true
	}

	d, ok := parseDay(day)
	if !ok {
		return false
	}

	return local.Day() == d
}

// parseDay разбирает число так же снисходительно, как parseInt без radix:
// ведущие пробелы и знак допустимы, префикс 0x означает hex,
// хвост после цифр отбрасывается.
func parseDay(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n64, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	n := int(n64)
	if neg {
		n = -n
	}

	return n, true
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
