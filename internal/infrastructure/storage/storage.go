// Package storage описывает хранилище записей сервера разработки.
package storage

import (
	"context"
	"errors"

	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

var ErrNotFound = errors.New("record not found")

type Storage interface {
	// Покупки
	ListPurchases(ctx context.Context) ([]purchase.Record, error)
	CreatePurchase(ctx context.Context, rec purchase.Record) (purchase.Record, error)

	// Работы
	ListServices(ctx context.Context) ([]service.Record, error)
	CreateService(ctx context.Context, rec service.Record) (service.Record, error)
	ToggleService(ctx context.Context, id string) (service.Record, error)
}
