package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory/items.
// Category vacía = se infiere por heurística del nombre al crear.
type CreateItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        int64           `json:"quantity"`
	Unit            string          `json:"unit"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Category        string          `json:"category,omitempty"`
}

// UpdateItemRequest body para PUT /api/inventory/items/:id.
// No incluye Quantity: la cantidad solo cambia vía movimientos de stock.
type UpdateItemRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Unit            *string          `json:"unit,omitempty"`
	MinimumQuantity *int64           `json:"minimum_quantity,omitempty"`
	CostPerUnit     *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Category        *string          `json:"category,omitempty"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        int64           `json:"quantity"`
	Unit            string          `json:"unit"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Category        string          `json:"category"`
	LowStock        bool            `json:"low_stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemStats estadísticas agregadas del inventario para el dashboard.
type ItemStats struct {
	TotalItems     int             `json:"total_items"`
	TotalValue     decimal.Decimal `json:"total_value"`
	LowStockItems  int             `json:"low_stock_items"`
	CategoryCounts map[string]int  `json:"category_counts"`
}

// ItemListResponse listado de artículos con estadísticas.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Stats ItemStats      `json:"stats"`
}

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ItemID    string `json:"item_id"`
	Quantity  int64  `json:"quantity"`
	Direction string `json:"direction"` // "in" | "out"
	Notes     string `json:"notes,omitempty"`
}

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	Direction string    `json:"direction"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementResponse movimiento registrado más la cantidad resultante.
type RegisterMovementResponse struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int64            `json:"new_quantity"`
}

// MovementListResponse libro de movimientos de un artículo.
type MovementListResponse struct {
	ItemID    string             `json:"item_id"`
	Movements []MovementResponse `json:"movements"`
}
