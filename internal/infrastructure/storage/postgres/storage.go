package postgres

import (
	"context"

	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

func (s *Storage) ListPurchases(ctx context.Context) ([]purchase.Record, error) {
	return s.purchases.List(ctx)
}

func (s *Storage) CreatePurchase(ctx context.Context, rec purchase.Record) (purchase.Record, error) {
	return s.purchases.Create(ctx, rec)
}

func (s *Storage) ListServices(ctx context.Context) ([]service.Record, error) {
	return s.services.List(ctx)
}

func (s *Storage) CreateService(ctx context.Context, rec service.Record) (service.Record, error) {
	return s.services.Create(ctx, rec)
}

func (s *Storage) ToggleService(ctx context.Context, id string) (service.Record, error) {
	return s.services.Toggle(ctx, id)
}
