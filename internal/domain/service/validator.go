package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"oficina/internal/domain/money"
)

// NewCreateRequest проверяет черновик: автомобиль и сумма обязательны.
func NewCreateRequest(d Draft) (CreateRequest, error) {
	if strings.TrimSpace(d.Vehicle) == "" {
		return CreateRequest{}, fmt.Errorf("%w: vehicle is required", ErrValidation)
	}

	amount, err := money.Parse(d.Amount)
	if err != nil {
		return CreateRequest{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return CreateRequest{
		Vehicle:     d.Vehicle,
		Description: d.Description,
		Amount:      json.Number(amount.String()),
	}, nil
}
