package purchase

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/purchase"
)

// Store - часть хранилища, нужная обработчику покупок
type Store interface {
	ListPurchases(ctx context.Context) ([]purchase.Record, error)
	CreatePurchase(ctx context.Context, rec purchase.Record) (purchase.Record, error)
}

type Handler struct {
	store      Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.store.ListPurchases(ctx)
	if err != nil {
		h.log.Error("failed to list purchases", "error", err)
		return nil, huma.Error500InternalServerError("failed to list purchases")
	}

	body := make([]response, 0, len(records))
	for _, rec := range records {
		body = append(body, fromRecord(rec))
	}

	return &listOutput{Body: body}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	rec, err := h.store.CreatePurchase(ctx, input.Body.toRecord())
	if err != nil {
		h.log.Error("failed to create purchase", "error", err)
		return nil, huma.Error500InternalServerError("failed to create purchase")
	}

	return &createOutput{Body: fromRecord(rec)}, nil
}
