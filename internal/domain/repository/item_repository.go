package repository

import (
	"context"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para artículos de inventario.
// UpdateQuantity solo debe invocarse desde el motor de movimientos, dentro de
// la misma transacción que crea la entrada del libro (GetForUpdate + UpdateQuantity).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// GetForUpdate obtiene el artículo bloqueando su fila (SELECT FOR UPDATE)
	// hasta el fin de la transacción. Devuelve nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Update(ctx context.Context, item *entity.Item) error
	List(ctx context.Context) ([]*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
