package purchase

import (
	"encoding/json"
)

// Draft - поля формы новой покупки как их ввел пользователь
type Draft struct {
	Product       string
	Description   string
	Amount        string
	PaymentMethod string
	Note          string
}

// CreateRequest - тело POST /compras
type CreateRequest struct {
	Product       string      `json:"produto"`
	Description   string      `json:"descricao"`
	Amount        json.Number `json:"valor"`
	PaymentMethod string      `json:"formaPagamento"`
	Note          string      `json:"observacao"`
}
