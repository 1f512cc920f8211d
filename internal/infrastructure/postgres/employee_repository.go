package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/gastro-ops/internal/domain"
	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, email, role, avatar_url, created_at, updated_at`

// Create persiste un empleado nuevo. Email duplicado -> domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Email, employee.Role,
		nullable(employee.AvatarURL), employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanEmployee(r.q.QueryRow(ctx, query, id), "get employee")
}

// GetByEmail obtiene un empleado por email. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return r.scanEmployee(r.q.QueryRow(ctx, query, email), "get employee by email")
}

// Update actualiza los datos de un empleado.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, email = $3, role = $4, avatar_url = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Email, employee.Role,
		nullable(employee.AvatarURL), employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// List lista los empleados ordenados por nombre.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var avatar *string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &avatar, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if avatar != nil {
			e.AvatarURL = *avatar
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado. Sus turnos se borran en cascada (FK).
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) scanEmployee(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	var avatar *string
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &avatar, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if avatar != nil {
		e.AvatarURL = *avatar
	}
	return &e, nil
}
