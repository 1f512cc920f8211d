package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículos de inventario (enum cerrado).
const (
	CategoryBeveragesAlcoholic    = "beverages-alcoholic"
	CategoryBeveragesNonAlcoholic = "beverages-non-alcoholic"
	CategoryFoodFresh             = "food-fresh"
	CategoryFoodDry               = "food-dry"
	CategoryFoodFrozen            = "food-frozen"
	CategoryFoodPrepared          = "food-prepared"
	CategorySupplies              = "supplies"
)

// ValidCategory indica si la categoría pertenece al conjunto cerrado.
func ValidCategory(c string) bool {
	switch c {
	case CategoryBeveragesAlcoholic, CategoryBeveragesNonAlcoholic,
		CategoryFoodFresh, CategoryFoodDry, CategoryFoodFrozen,
		CategoryFoodPrepared, CategorySupplies:
		return true
	}
	return false
}

// Item representa un artículo de inventario del negocio.
// Quantity solo se modifica vía movimientos de stock (libro mayor);
// las ediciones de campos nunca tocan Quantity.
type Item struct {
	ID              string
	Name            string
	Description     string
	Quantity        int64 // invariante: >= 0
	Unit            string
	MinimumQuantity int64
	CostPerUnit     decimal.Decimal
	Category        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock indica si el artículo está en o por debajo del umbral de reposición.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinimumQuantity
}

// Value devuelve el valor en inventario del artículo (cantidad × costo unitario).
func (i *Item) Value() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.CostPerUnit)
}
