package repository

import (
	"context"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de
// movimientos de stock. El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByItem devuelve los movimientos del artículo ordenados por
	// created_at ascendente.
	ListByItem(ctx context.Context, itemID string) ([]*entity.StockMovement, error)
	CountByItem(ctx context.Context, itemID string) (int64, error)
}
