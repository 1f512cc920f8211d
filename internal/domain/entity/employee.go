package entity

import "time"

// Employee representa un empleado del negocio.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Role      string // por defecto "employee"
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
