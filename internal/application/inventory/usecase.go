package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/gastro-ops/internal/application/ports"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

// LedgerUseCase es el motor de movimientos de stock: aplica entradas y salidas
// sobre la cantidad de un artículo con garantía de stock no negativo y registra
// cada movimiento en el libro (append-only).
//
// Serialización por artículo: todo RegisterMovement corre dentro de una
// transacción que bloquea la fila del artículo (SELECT FOR UPDATE), por lo que
// dos movimientos concurrentes sobre el mismo artículo se ejecutan en algún
// orden secuencial; artículos distintos no comparten bloqueo. La cantidad del
// artículo no tiene ningún otro camino de escritura.
type LedgerUseCase struct {
	txRunner  TxRunner
	items     repository.ItemRepository
	movements repository.MovementRepository
	cache     ports.Cache
}

// NewLedgerUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewLedgerUseCase(
	txRunner TxRunner,
	items repository.ItemRepository,
	movements repository.MovementRepository,
	cache ports.Cache,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, items: items, movements: movements, cache: cache}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ItemID    string
	Quantity  int64  // magnitud, > 0
	Direction string // entity.DirectionIn | entity.DirectionOut
	Notes     string
}

// MovementResult movimiento registrado junto con la cantidad resultante.
type MovementResult struct {
	Movement    *entity.StockMovement
	NewQuantity int64
}

// RegisterMovement aplica un movimiento de stock de forma atómica:
// lee la cantidad bloqueando la fila, valida que la salida no deje stock
// negativo, escribe la nueva cantidad y añade la entrada al libro. Todo dentro
// de la misma transacción; si algo falla no queda mutación parcial.
//
// Errores: domain.ErrInvalidMovement (cantidad <= 0 o dirección desconocida),
// domain.ErrNotFound (artículo inexistente), domain.ErrInsufficientStock
// (la salida dejaría cantidad negativa). Cualquier otro error es fallo de
// infraestructura y el movimiento no se aplicó (reintentable).
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ItemID == "" || input.Quantity <= 0 || !entity.ValidDirection(input.Direction) {
		return nil, domain.ErrInvalidMovement
	}

	now := time.Now()
	result := &MovementResult{}

	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		movements repository.MovementRepository,
	) error {
		// Bloquea la fila del artículo hasta el commit: serializa los
		// movimientos concurrentes sobre el mismo artículo.
		item, err := items.GetForUpdate(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		delta := input.Quantity
		if input.Direction == entity.DirectionOut {
			delta = -delta
		}
		newQuantity := item.Quantity + delta
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}

		if err := items.UpdateQuantity(ctx, item.ID, newQuantity); err != nil {
			return err
		}

		movement := &entity.StockMovement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Quantity:  input.Quantity,
			Direction: input.Direction,
			Notes:     input.Notes,
			CreatedAt: now,
		}
		if err := movements.Create(ctx, movement); err != nil {
			return err
		}

		result.Movement = movement
		result.NewQuantity = newQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	// El caché de listados deja de ser válido tras toda mutación exitosa;
	// la DB es la única fuente de verdad.
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, ports.CacheKeyItems, ports.CacheKeyItemStats)
	}
	return result, nil
}

// ListMovements devuelve el libro del artículo ordenado por fecha de creación
// ascendente. Distingue "artículo sin movimientos" (lista vacía) de "artículo
// inexistente" (domain.ErrNotFound).
func (uc *LedgerUseCase) ListMovements(ctx context.Context, itemID string) ([]*entity.StockMovement, error) {
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movements.ListByItem(ctx, itemID)
}

// CurrentQuantity devuelve la cantidad actual del artículo.
func (uc *LedgerUseCase) CurrentQuantity(ctx context.Context, itemID string) (int64, error) {
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, domain.ErrNotFound
	}
	return item.Quantity, nil
}
