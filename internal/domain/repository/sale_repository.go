package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// TotalBetween es una consulta agregada de solo lectura (SUM en la DB,
// no en memoria); el rango es [from, to).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	TotalBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
