package entity

import "time"

// Roles válidos para User. Los roles son disjuntos: admin no hereda manager ni al revés.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// ValidRole indica si el rol es uno de los aceptados por el sistema.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// User representa un principal autenticado del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin | manager
	Adresse      string
	Image        string // ruta relativa bajo uploads
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
