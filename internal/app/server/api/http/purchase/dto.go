package purchase

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina/internal/domain/purchase"
)

type listOutput struct {
	Body []response
}

type createInput struct {
	Body request
}

type createOutput struct {
	Body response
}

type request struct {
	Product       string  `json:"produto" minLength:"1" pattern:"\\S" doc:"Produto"`
	Description   string  `json:"descricao,omitempty" doc:"Descrição"`
	Amount        float64 `json:"valor" minimum:"0" doc:"Valor em reais"`
	PaymentMethod string  `json:"formaPagamento,omitempty" doc:"Forma de pagamento"`
	Note          string  `json:"observacao,omitempty" doc:"Observação"`
}

type response struct {
	ID            string    `json:"_id"`
	Date          time.Time `json:"data"`
	Product       string    `json:"produto"`
	Description   string    `json:"descricao"`
	Amount        float64   `json:"valor"`
	PaymentMethod string    `json:"formaPagamento"`
	Note          string    `json:"observacao"`
}

func (r request) toRecord() purchase.Record {
	return purchase.Record{
		Product:       r.Product,
		Description:   r.Description,
		Amount:        decimal.NewFromFloat(r.Amount),
		PaymentMethod: r.PaymentMethod,
		Note:          r.Note,
	}
}

func fromRecord(rec purchase.Record) response {
	return response{
		ID:            rec.ID,
		Date:          rec.Date,
		Product:       rec.Product,
		Description:   rec.Description,
		Amount:        rec.Amount.InexactFloat64(),
		PaymentMethod: rec.PaymentMethod,
		Note:          rec.Note,
	}
}
