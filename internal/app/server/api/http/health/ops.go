package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Estado do servidor",
		Description: "Verifica o acesso ao armazenamento e devolve a quantidade de compras e serviços.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
