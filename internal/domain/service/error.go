package service

import (
	"errors"
)

var (
	ErrValidation = errors.New("invalid service")
)

// RequiredPrompt - сообщение пользователю, когда не заполнены обязательные поля
const RequiredPrompt = "Preencha o Veículo e o Valor!"
