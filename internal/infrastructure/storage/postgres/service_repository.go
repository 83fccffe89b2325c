package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/service"
	"oficina/internal/infrastructure/storage"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewServiceRepository(pool *pgxpool.Pool, log *slog.Logger) *ServiceRepository {
	return &ServiceRepository{
		pool: pool,
		log:  log.With("component", "service_repository"),
	}
}

const serviceColumns = `id, veiculo, descricao, valor::text, pago, data`

// List возвращает все работы в порядке создания
func (r *ServiceRepository) List(ctx context.Context) ([]service.Record, error) {
	query := `SELECT ` + serviceColumns + ` FROM servicos ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list services", "error", err)
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	records := make([]service.Record, 0)
	for rows.Next() {
		rec, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Create сохраняет новую работу, всегда с pago=false
func (r *ServiceRepository) Create(ctx context.Context, rec service.Record) (service.Record, error) {
	query := `
		INSERT INTO servicos (id, veiculo, descricao, valor, pago)
		VALUES ($1, $2, $3, $4::numeric, FALSE)
		RETURNING ` + serviceColumns

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	created, err := scanService(r.pool.QueryRow(ctx, query,
		rec.ID, rec.Vehicle, rec.Description, rec.Amount.String(),
	))
	if err != nil {
		r.log.Error("failed to create service", "veiculo", rec.Vehicle, "error", err)
		return service.Record{}, fmt.Errorf("create service: %w", err)
	}

	return created, nil
}

// Toggle инвертирует pago одним UPDATE
func (r *ServiceRepository) Toggle(ctx context.Context, id string) (service.Record, error) {
	query := `UPDATE servicos SET pago = NOT pago WHERE id = $1 RETURNING ` + serviceColumns

	rec, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.Record{}, fmt.Errorf("toggle service %s: %w", id, storage.ErrNotFound)
		}
		r.log.Error("failed to toggle service", "id", id, "error", err)
		return service.Record{}, fmt.Errorf("toggle service: %w", err)
	}

	return rec, nil
}

func scanService(row pgx.Row) (service.Record, error) {
	var (
		rec    service.Record
		amount string
	)

	if err := row.Scan(&rec.ID, &rec.Vehicle, &rec.Description, &amount, &rec.Paid, &rec.Date); err != nil {
		return service.Record{}, fmt.Errorf("scan service: %w", err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return service.Record{}, fmt.Errorf("parse valor %q: %w", amount, err)
	}
	rec.Amount = value
	rec.Date = rec.Date.UTC()

	return rec, nil
}
