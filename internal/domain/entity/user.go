package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst" // gestiona el catálogo y ejecuta análisis
	RoleViewer  = "viewer"  // solo lectura
)

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleAnalyst || r == RoleViewer
}

// User representa un usuario del sistema (pertenece a una empresa).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
