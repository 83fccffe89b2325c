package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"oficina/internal/domain/purchase"
)

type PurchaseRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPurchaseRepository(pool *pgxpool.Pool, log *slog.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		pool: pool,
		log:  log.With("component", "purchase_repository"),
	}
}

// List возвращает все покупки в порядке создания
func (r *PurchaseRepository) List(ctx context.Context) ([]purchase.Record, error) {
	const query = `
		SELECT id, data, produto, descricao, valor::text, forma_pagamento, observacao
		FROM compras
		ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list purchases", "error", err)
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	records := make([]purchase.Record, 0)
	for rows.Next() {
		rec, err := scanPurchase(rows)
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

// Create сохраняет покупку. Идентификатор генерируется здесь, дату ставит база.
func (r *PurchaseRepository) Create(ctx context.Context, rec purchase.Record) (purchase.Record, error) {
	const query = `
		INSERT INTO compras (id, produto, descricao, valor, forma_pagamento, observacao)
		VALUES ($1, $2, $3, $4::numeric, $5, $6)
		RETURNING id, data, produto, descricao, valor::text, forma_pagamento, observacao`

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	row := r.pool.QueryRow(ctx, query,
		rec.ID, rec.Product, rec.Description, rec.Amount.String(), rec.PaymentMethod, rec.Note,
	)

	created, err := scanPurchase(row)
	if err != nil {
		r.log.Error("failed to create purchase", "produto", rec.Product, "error", err)
		return purchase.Record{}, fmt.Errorf("create purchase: %w", err)
	}

	return created, nil
}

func scanPurchase(row pgx.Row) (purchase.Record, error) {
	var (
		rec    purchase.Record
		amount string
	)

	err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.Product,
		&rec.Description,
		&amount,
		&rec.PaymentMethod,
		&rec.Note,
	)
	if err != nil {
		return purchase.Record{}, fmt.Errorf("scan purchase: %w", err)
	}

	rec.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return purchase.Record{}, fmt.Errorf("parse valor %q: %w", amount, err)
	}
	rec.Date = rec.Date.UTC()

	return rec, nil
}
