package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/gastro-ops/internal/application/dto"
	"github.com/jcastro/gastro-ops/internal/domain"
)

func TestEmployeeCreate(t *testing.T) {
	uc := NewEmployeeUseCase(newMemEmployeeRepo())
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Anna Schmidt", Email: "anna.schmidt@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role, "rol por defecto")
	assert.Contains(t, resp.AvatarURL, "seed=anna.schmidt",
		"el avatar se deriva de la parte local del email")

	// Email duplicado.
	_, err = uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Otra Persona", Email: "anna.schmidt@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Email sin arroba.
	_, err = uc.Create(ctx, dto.CreateEmployeeRequest{Name: "Max", Email: "max.example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUpdate_EmailRegeneraAvatar(t *testing.T) {
	uc := NewEmployeeUseCase(newMemEmployeeRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Luca Bianchi", Email: "luca@example.com", Role: "manager",
	})
	require.NoError(t, err)

	newEmail := "luca.bianchi@example.com"
	updated, err := uc.Update(ctx, created.ID, dto.UpdateEmployeeRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Contains(t, updated.AvatarURL, "seed=luca.bianchi")
	assert.Equal(t, "manager", updated.Role, "el rol no cambia si no se envía")
}

func TestEmployeeUpdate_EmailOcupado(t *testing.T) {
	uc := NewEmployeeUseCase(newMemEmployeeRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployeeRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateEmployeeRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	taken := "a@example.com"
	_, err = uc.Update(ctx, b.ID, dto.UpdateEmployeeRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmployeeDelete_Inexistente(t *testing.T) {
	uc := NewEmployeeUseCase(newMemEmployeeRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
