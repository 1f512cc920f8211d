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

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftSelect = `
	SELECT s.id, s.employee_id, s.start_time, s.end_time, s.notes, s.tips,
	       s.created_at, s.updated_at, e.name, e.email
	FROM shifts s
	JOIN employees e ON e.id = s.employee_id`

// Create persiste un turno nuevo. Empleado inexistente -> domain.ErrNotFound.
func (r *ShiftRepo) Create(ctx context.Context, shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employee_id, start_time, end_time, notes, tips, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		shift.ID, shift.EmployeeID, shift.StartTime, shift.EndTime,
		nullable(shift.Notes), shift.Tips, shift.CreatedAt, shift.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID con los datos del empleado. Devuelve nil si no existe.
func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	row := r.q.QueryRow(ctx, shiftSelect+` WHERE s.id = $1`, id)
	s, err := scanShiftRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

// Update actualiza horario, notas y propinas de un turno.
func (r *ShiftRepo) Update(ctx context.Context, shift *entity.Shift) error {
	query := `
		UPDATE shifts
		SET start_time = $2, end_time = $3, notes = $4, tips = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		shift.ID, shift.StartTime, shift.EndTime, nullable(shift.Notes),
		shift.Tips, shift.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// List lista los turnos ordenados por inicio ascendente con nombre y email del empleado.
func (r *ShiftRepo) List(ctx context.Context) ([]*entity.Shift, error) {
	rows, err := r.q.Query(ctx, shiftSelect+` ORDER BY s.start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shift
	for rows.Next() {
		s, err := scanShiftRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un turno por ID.
func (r *ShiftRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func scanShiftRow(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	var notes *string
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime, &notes, &s.Tips,
		&s.CreatedAt, &s.UpdatedAt, &s.EmployeeName, &s.EmployeeEmail); err != nil {
		return nil, err
	}
	if notes != nil {
		s.Notes = *notes
	}
	return &s, nil
}
