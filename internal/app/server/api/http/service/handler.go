package service

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/service"
	"oficina/internal/infrastructure/storage"
)

// Store - часть хранилища, нужная обработчику работ
type Store interface {
	ListServices(ctx context.Context) ([]service.Record, error)
	CreateService(ctx context.Context, rec service.Record) (service.Record, error)
	ToggleService(ctx context.Context, id string) (service.Record, error)
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
	huma.Register(api, h.toggleOp(), h.toggle)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.store.ListServices(ctx)
	if err != nil {
		h.log.Error("failed to list services", "error", err)
		return nil, huma.Error500InternalServerError("failed to list services")
	}

	body := make([]response, 0, len(records))
	for _, rec := range records {
		body = append(body, fromRecord(rec))
	}

	return &listOutput{Body: body}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	rec, err := h.store.CreateService(ctx, input.Body.toRecord())
	if err != nil {
		h.log.Error("failed to create service", "error", err)
		return nil, huma.Error500InternalServerError("failed to create service")
	}

	return &recordOutput{Body: fromRecord(rec)}, nil
}

func (h *Handler) toggle(ctx context.Context, input *toggleInput) (*recordOutput, error) {
	rec, err := h.store.ToggleService(ctx, input.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, huma.Error404NotFound("service not found")
		}
		h.log.Error("failed to toggle service", "id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("failed to toggle service")
	}

	return &recordOutput{Body: fromRecord(rec)}, nil
}
