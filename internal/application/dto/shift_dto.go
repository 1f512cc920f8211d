package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShiftRequest body para POST /api/shifts.
type CreateShiftRequest struct {
	EmployeeID string          `json:"employee_id"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Notes      string          `json:"notes,omitempty"`
	Tips       decimal.Decimal `json:"tips"`
}

// UpdateShiftRequest body para PUT /api/shifts/:id.
type UpdateShiftRequest struct {
	StartTime *time.Time       `json:"start_time,omitempty"`
	EndTime   *time.Time       `json:"end_time,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Tips      *decimal.Decimal `json:"tips,omitempty"`
}

// ShiftResponse turno con los datos del empleado resueltos.
type ShiftResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeEmail string          `json:"employee_email,omitempty"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	Notes         string          `json:"notes,omitempty"`
	Tips          decimal.Decimal `json:"tips"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
