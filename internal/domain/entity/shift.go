package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift representa un turno asignado a un empleado.
type Shift struct {
	ID         string
	EmployeeID string
	StartTime  time.Time
	EndTime    time.Time
	Notes      string
	Tips       decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Datos del empleado para listados (join de solo lectura).
	EmployeeName  string
	EmployeeEmail string
}
