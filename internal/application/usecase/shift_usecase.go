package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

// ShiftUseCase casos de uso CRUD para turnos.
type ShiftUseCase struct {
	shifts    repository.ShiftRepository
	employees repository.EmployeeRepository
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(shifts repository.ShiftRepository, employees repository.EmployeeRepository) *ShiftUseCase {
	return &ShiftUseCase{shifts: shifts, employees: employees}
}

// Create crea un turno. El empleado debe existir y el fin debe ser posterior
// al inicio; las propinas no pueden ser negativas.
func (uc *ShiftUseCase) Create(ctx context.Context, in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if in.EmployeeID == "" || in.StartTime.IsZero() || in.EndTime.IsZero() || !in.EndTime.After(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.Tips.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	shift := &entity.Shift{
		ID:            uuid.New().String(),
		EmployeeID:    in.EmployeeID,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Notes:         in.Notes,
		Tips:          in.Tips,
		CreatedAt:     now,
		UpdatedAt:     now,
		EmployeeName:  employee.Name,
		EmployeeEmail: employee.Email,
	}
	if err := uc.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// GetByID obtiene un turno por ID.
func (uc *ShiftUseCase) GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	shift, err := uc.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	return toShiftResponse(shift), nil
}

// Update edita horario, notas o propinas de un turno.
func (uc *ShiftUseCase) Update(ctx context.Context, id string, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := uc.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	if in.StartTime != nil {
		shift.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		shift.EndTime = *in.EndTime
	}
	if !shift.EndTime.After(shift.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.Notes != nil {
		shift.Notes = *in.Notes
	}
	if in.Tips != nil {
		if in.Tips.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		shift.Tips = *in.Tips
	}
	shift.UpdatedAt = time.Now()
	if err := uc.shifts.Update(ctx, shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// List lista los turnos ordenados por inicio ascendente con los datos del empleado.
func (uc *ShiftUseCase) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	list, err := uc.shifts.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShiftResponse(s))
	}
	return items, nil
}

// Delete elimina un turno por ID.
func (uc *ShiftUseCase) Delete(ctx context.Context, id string) error {
	shift, err := uc.shifts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shift == nil {
		return domain.ErrNotFound
	}
	return uc.shifts.Delete(ctx, id)
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeName,
		EmployeeEmail: s.EmployeeEmail,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Notes:         s.Notes,
		Tips:          s.Tips,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
