package purchase

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina/internal/domain/filter"
)

// Record - покупка в том виде, как ее вернул API. Клиент ее не изменяет.
type Record struct {
	ID            string          `json:"_id"`
	Date          time.Time       `json:"data"`
	Product       string          `json:"produto"`
	Description   string          `json:"descricao,omitempty"`
	Amount        decimal.Decimal `json:"valor"`
	PaymentMethod string          `json:"formaPagamento,omitempty"`
	Note          string          `json:"observacao,omitempty"`
}

// FilterConfig описывает покупки для пакета filter:
// поиск по продукту и описанию, без разбивки по оплате.
func FilterConfig(loc *time.Location) filter.Config[Record] {
	return filter.Config[Record]{
		Fields: func(r Record) filter.Fields {
			return filter.Fields{Primary: r.Product, Secondary: r.Description}
		},
		Date:     func(r Record) time.Time { return r.Date },
		Amount:   func(r Record) decimal.Decimal { return r.Amount },
		Location: loc,
	}
}
