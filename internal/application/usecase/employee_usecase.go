package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

const defaultEmployeeRole = "employee"

// EmployeeUseCase casos de uso CRUD para la plantilla de empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// Create crea un empleado. Nombre y email son obligatorios; email duplicado es
// conflicto. El avatar se genera a partir de la parte local del email.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.employees.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	role := in.Role
	if role == "" {
		role = defaultEmployeeRole
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		AvatarURL: avatarURL(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update edita nombre, email o rol.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Email != nil && *in.Email != employee.Email {
		if !strings.Contains(*in.Email, "@") {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.employees.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		employee.Email = *in.Email
		employee.AvatarURL = avatarURL(*in.Email)
	}
	if in.Role != nil {
		employee.Role = *in.Role
	}
	employee.UpdatedAt = time.Now()
	if err := uc.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	employee, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.employees.Delete(ctx, id)
}

// avatarURL genera la URL de avatar determinista a partir del email.
func avatarURL(email string) string {
	seed := email
	if at := strings.Index(email, "@"); at > 0 {
		seed = email[:at]
	}
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s&backgroundColor=b6e3f4,c0aede,d1d4f9", seed)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      e.Role,
		AvatarURL: e.AvatarURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
