package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales. Date en formato "2006-01-02".
type CreateSaleRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// SaleResponse representación de una venta en respuestas.
type SaleResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// PeriodSummary total de un período comparado con el anterior.
type PeriodSummary struct {
	Total         decimal.Decimal `json:"total"`
	Previous      decimal.Decimal `json:"previous"`
	PercentChange decimal.Decimal `json:"percent_change"`
}

// SalesSummaryResponse resumen del dashboard: hoy vs. ayer y semana en curso
// vs. semana anterior.
type SalesSummaryResponse struct {
	Date   string        `json:"date"`
	Daily  PeriodSummary `json:"daily"`
	Weekly PeriodSummary `json:"weekly"`
}
