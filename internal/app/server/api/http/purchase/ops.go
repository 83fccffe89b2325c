package purchase

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "compras-list",
		Method:      http.MethodGet,
		Path:        "/compras",
		Summary:     "Lista completa de compras",
		Tags:        []string{"compras"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "compras-create",
		Method:        http.MethodPost,
		Path:          "/compras",
		Summary:       "Cadastrar compra",
		Description:   "Cria uma compra. Identificador e data são atribuídos pelo servidor.",
		Tags:          []string{"compras"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
