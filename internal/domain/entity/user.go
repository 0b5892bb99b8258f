package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User es un usuario de la aplicación. Su ID es a la vez el AccountID que
// escopa todos los datos de negocio (productos, ventas, proveedores, settings).
type User struct {
	ID             string
	Email          string
	PasswordHash   string
	Name           string
	CompanyName    string
	Role           string // "admin" | "user"
	OnboardingSeen bool   // se lee al iniciar sesión y se marca una sola vez
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
