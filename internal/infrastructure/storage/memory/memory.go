package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
	"oficina/internal/infrastructure/storage"
)

// Storage хранит записи в памяти в порядке создания
type Storage struct {
	mu        sync.RWMutex
	purchases []purchase.Record
	services  []service.Record
	log       *slog.Logger
	now       func() time.Time
}

var _ storage.Storage = (*Storage)(nil)

func New(log *slog.Logger) *Storage {
	return &Storage{
		log: log.With("component", "memory_storage"),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock подменяет источник времени для новых записей
func (s *Storage) WithClock(now func() time.Time) *Storage {
	s.now = now
	return s
}

func (s *Storage) ListPurchases(_ context.Context) ([]purchase.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]purchase.Record, len(s.purchases))
	copy(out, s.purchases)
	return out, nil
}

// CreatePurchase назначает идентификатор и дату, если они не заданы
func (s *Storage) CreatePurchase(_ context.Context, rec purchase.Record) (purchase.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	s.purchases = append(s.purchases, rec)
	s.log.Debug("purchase created", "id", rec.ID)

	return rec, nil
}

func (s *Storage) ListServices(_ context.Context) ([]service.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]service.Record, len(s.services))
	copy(out, s.services)
	return out, nil
}

// CreateService назначает идентификатор и дату, если они не заданы
func (s *Storage) CreateService(_ context.Context, rec service.Record) (service.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	s.services = append(s.services, rec)
	s.log.Debug("service created", "id", rec.ID)

	return rec, nil
}

func (s *Storage) ToggleService(_ context.Context, id string) (service.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].Paid = !s.services[i].Paid
			s.log.Debug("service toggled", "id", id, "paid", s.services[i].Paid)
			return s.services[i], nil
		}
	}

	return service.Record{}, fmt.Errorf("toggle service %s: %w", id, storage.ErrNotFound)
}
