package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"oficina/internal/config"
	"oficina/internal/infrastructure/migration"
	"oficina/internal/infrastructure/storage"
)

// Storage хранит покупки и работы в PostgreSQL
type Storage struct {
	pool      *pgxpool.Pool
	log       *slog.Logger
	purchases *PurchaseRepository
	services  *ServiceRepository
}

var _ storage.Storage = (*Storage)(nil)

// New подключается к базе и применяет миграции
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, engine migration.MigrationEngine) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg, engine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{
		pool:      pool,
		log:       log.With("component", "postgres_storage"),
		purchases: NewPurchaseRepository(pool, log),
		services:  NewServiceRepository(pool, log),
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
