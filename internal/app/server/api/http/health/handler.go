package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
)

// Store - часть хранилища, по которой проверяется доступность
type Store interface {
	ListPurchases(ctx context.Context) ([]purchase.Record, error)
	ListServices(ctx context.Context) ([]service.Record, error)
}

type Handler struct {
	store      Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Store, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck отвечает 503, если хранилище не читается
func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	purchases, err := h.store.ListPurchases(ctx)
	if err != nil {
		h.log.Warn("health check: purchases unavailable", "error", err)
		return nil, huma.Error503ServiceUnavailable(StatusDegraded, err)
	}

	services, err := h.store.ListServices(ctx)
	if err != nil {
		h.log.Warn("health check: services unavailable", "error", err)
		return nil, huma.Error503ServiceUnavailable(StatusDegraded, err)
	}

	return &Output{
		Body: Response{
			Status:    StatusOK,
			Purchases: len(purchases),
			Services:  len(services),
			Time:      time.Now().UTC(),
		},
	}, nil
}
