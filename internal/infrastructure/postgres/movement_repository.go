package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada del libro de movimientos.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, item_id, quantity, direction, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ItemID, movement.Quantity, movement.Direction,
		nullable(movement.Notes), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un artículo ordenados por created_at ascendente.
func (r *MovementRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, quantity, direction, notes, created_at
		FROM stock_movements WHERE item_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var notes *string
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Quantity, &m.Direction, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByItem cuenta los movimientos registrados para un artículo.
func (r *MovementRepo) CountByItem(ctx context.Context, itemID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements WHERE item_id = $1`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}
