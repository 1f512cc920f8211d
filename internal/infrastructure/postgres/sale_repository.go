package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
// Los totales por período se agregan en la DB (SUM), no en memoria.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta nueva.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, amount, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Amount, sale.Date, nullable(sale.Description), sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// List lista ventas ordenadas por fecha descendente con paginación.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, amount, date, description, created_at
		FROM sales ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var description *string
		if err := rows.Scan(&s.ID, &s.Amount, &s.Date, &description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if description != nil {
			s.Description = *description
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TotalBetween suma los importes con fecha en [from, to).
// COALESCE devuelve cero en períodos sin ventas.
func (r *SaleRepo) TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM sales WHERE date >= $1 AND date < $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}
