package entity

import "time"

// Direcciones de movimiento de stock.
const (
	DirectionIn  = "in"  // entrada
	DirectionOut = "out" // salida
)

// ValidDirection indica si la dirección pertenece al conjunto cerrado.
func ValidDirection(d string) bool {
	return d == DirectionIn || d == DirectionOut
}

// StockMovement es una entrada inmutable del libro de movimientos de stock.
// Quantity es la magnitud (siempre positiva); la dirección va por separado.
type StockMovement struct {
	ID        string
	ItemID    string
	Quantity  int64
	Direction string
	Notes     string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo según la dirección.
func (m *StockMovement) SignedQuantity() int64 {
	if m.Direction == DirectionOut {
		return -m.Quantity
	}
	return m.Quantity
}
