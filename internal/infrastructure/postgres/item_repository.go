package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, quantity, unit, minimum_quantity, cost_per_unit, category, created_at, updated_at`

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullable(item.Description), item.Quantity, item.Unit,
		item.MinimumQuantity, item.CostPerUnit, item.Category, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanItem(r.q.QueryRow(ctx, query, id), "get item")
}

// GetForUpdate obtiene el artículo bloqueando su fila (SELECT FOR UPDATE).
// El bloqueo serializa los movimientos concurrentes sobre el mismo artículo
// y se mantiene hasta el fin de la transacción. Devuelve nil si no existe.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanItem(r.q.QueryRow(ctx, query, id), "get item for update")
}

// UpdateQuantity escribe la nueva cantidad. Solo el motor de movimientos debe
// llamarlo, dentro de la transacción que crea la entrada del libro.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `UPDATE inventory_items SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update item quantity: fila no encontrada")
	}
	return nil
}

// Update actualiza los campos editables del artículo. No toca quantity.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, unit = $4, minimum_quantity = $5,
		    cost_per_unit = $6, category = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, nullable(item.Description), item.Unit,
		item.MinimumQuantity, item.CostPerUnit, item.Category, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista todos los artículos ordenados por nombre.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		var description *string
		if err := rows.Scan(&i.ID, &i.Name, &description, &i.Quantity, &i.Unit,
			&i.MinimumQuantity, &i.CostPerUnit, &i.Category, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if description != nil {
			i.Description = *description
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID. La FK de stock_movements es RESTRICT:
// la DB rechaza el borrado si quedan movimientos (backstop de la regla de negocio).
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanItem(row pgx.Row, op string) (*entity.Item, error) {
	var i entity.Item
	var description *string
	err := row.Scan(&i.ID, &i.Name, &description, &i.Quantity, &i.Unit,
		&i.MinimumQuantity, &i.CostPerUnit, &i.Category, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description != nil {
		i.Description = *description
	}
	return &i, nil
}
