package inventory

import (
	"context"

	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de stock:
// la actualización de cantidad y la entrada del libro se confirman o se
// revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		movements repository.MovementRepository,
	) error) error
}
