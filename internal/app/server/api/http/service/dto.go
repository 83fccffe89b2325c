package service

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina/internal/domain/service"
)

type listOutput struct {
	Body []response
}

type createInput struct {
	Body request
}

type recordOutput struct {
	Body response
}

type toggleInput struct {
	ID string `path:"id" doc:"Identificador do serviço"`
}

type request struct {
	Vehicle     string  `json:"veiculo" minLength:"1" pattern:"\\S" doc:"Veículo (modelo / placa)"`
	Description string  `json:"descricao,omitempty" doc:"Descrição do serviço"`
	Amount      float64 `json:"valor" minimum:"0" doc:"Valor do orçamento"`
}

type response struct {
	ID          string    `json:"_id"`
	Vehicle     string    `json:"veiculo"`
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	Paid        bool      `json:"pago"`
	Date        time.Time `json:"data"`
}

// новая работа всегда не оплачена
func (r request) toRecord() service.Record {
	return service.Record{
		Vehicle:     r.Vehicle,
		Description: r.Description,
		Amount:      decimal.NewFromFloat(r.Amount),
	}
}

func fromRecord(rec service.Record) response {
	return response{
		ID:          rec.ID,
		Vehicle:     rec.Vehicle,
		Description: rec.Description,
		Amount:      rec.Amount.InexactFloat64(),
		Paid:        rec.Paid,
		Date:        rec.Date,
	}
}
