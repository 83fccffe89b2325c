package purchase

import (
	"encoding/json"
	"fmt"
	"strings"

	"oficina/internal/domain/money"
)

// NewCreateRequest проверяет черновик и собирает тело запроса.
// Продукт и сумма обязательны, остальные поля передаются как есть.
func NewCreateRequest(d Draft) (CreateRequest, error) {
	if strings.TrimSpace(d.Product) == "" {
		return CreateRequest{}, fmt.Errorf("%w: product is required", ErrValidation)
	}

	amount, err := money.Parse(d.Amount)
	if err != nil {
		return CreateRequest{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return CreateRequest{
		Product:       d.Product,
		Description:   d.Description,
		Amount:        json.Number(amount.String()),
		PaymentMethod: d.PaymentMethod,
		Note:          d.Note,
	}, nil
}
