package service

import (
	"encoding/json"
)

// Draft - поля формы новой работы как их ввел пользователь
type Draft struct {
	Vehicle     string
	Description string
	Amount      string
}

// CreateRequest - тело POST /servicos. Сервер создает запись с pago=false.
type CreateRequest struct {
	Vehicle     string      `json:"veiculo"`
	Description string      `json:"descricao"`
	Amount      json.Number `json:"valor"`
}
