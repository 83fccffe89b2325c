package service

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina/internal/domain/filter"
)

const (
	StatusPaid    = "PAGO"
	StatusPending = "COBRAR"

	emptyDescription = "Sem descrição"
)

// Record - работа по автомобилю. Paid меняется только через toggle на сервере.
type Record struct {
	ID          string          `json:"_id"`
	Vehicle     string          `json:"veiculo"`
	Description string          `json:"descricao,omitempty"`
	Amount      decimal.Decimal `json:"valor"`
	Paid        bool            `json:"pago"`
	Date        time.Time       `json:"data"`
}

// Status - подпись статуса оплаты для списка
func (r Record) Status() string {
	if r.Paid {
		return StatusPaid
	}
	return StatusPending
}

// ToggleAction - подпись действия, которое выполнит toggle
func (r Record) ToggleAction() string {
	if r.Paid {
		return "CANCELAR (ESTORNAR)"
	}
	return "CONFIRMAR RECEBIMENTO"
}

// DisplayDescription возвращает описание или заглушку для пустого
func (r Record) DisplayDescription() string {
	if r.Description == "" {
		return emptyDescription
	}
	return r.Description
}

// FilterConfig описывает работы для пакета filter:
// поиск только по автомобилю, разбивка на полученное и ожидаемое.
func FilterConfig(loc *time.Location) filter.Config[Record] {
	return filter.Config[Record]{
		Fields: func(r Record) filter.Fields {
			return filter.Fields{Primary: r.Vehicle}
		},
		Date:     func(r Record) time.Time { return r.Date },
		Amount:   func(r Record) decimal.Decimal { return r.Amount },
		Paid:     func(r Record) bool { return r.Paid },
		Location: loc,
	}
}
