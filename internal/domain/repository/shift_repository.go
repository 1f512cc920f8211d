package repository

import (
	"context"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para turnos.
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	Update(ctx context.Context, shift *entity.Shift) error
	// List devuelve los turnos ordenados por start_time ascendente con
	// nombre y email del empleado resueltos.
	List(ctx context.Context) ([]*entity.Shift, error)
	Delete(ctx context.Context, id string) error
}
