package service

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "servicos-list",
		Method:      http.MethodGet,
		Path:        "/servicos",
		Summary:     "Lista completa de serviços",
		Tags:        []string{"servicos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "servicos-create",
		Method:        http.MethodPost,
		Path:          "/servicos",
		Summary:       "Cadastrar serviço",
		Description:   "Cria um serviço não pago. Identificador e data são atribuídos pelo servidor.",
		Tags:          []string{"servicos"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "servicos-toggle",
		Method:      http.MethodPatch,
		Path:        "/servicos/{id}/toggle",
		Summary:     "Alternar pagamento",
		Description: "Inverte o campo pago do serviço e devolve o registro atualizado.",
		Tags:        []string{"servicos"},
		Middlewares: h.middleware,
	}
}
