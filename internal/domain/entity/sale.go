package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa un registro de venta del día.
type Sale struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time // solo la fecha es significativa
	Description string
	CreatedAt   time.Time
}
