package purchase

import (
	"errors"
)

var (
	ErrValidation = errors.New("invalid purchase")
)

// RequiredPrompt - сообщение пользователю, когда не заполнены обязательные поля
const RequiredPrompt = "Produto e Valor são obrigatórios!"
