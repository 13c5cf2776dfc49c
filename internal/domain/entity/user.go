package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin    = "admin"    // administra tarifas y cuentas
	RolePlanta   = "planta"   // crea y confirma lotes
	RoleOperador = "operador" // actualiza estados de entrega
)

// User es un usuario de la aplicación, siempre asociado a una empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
