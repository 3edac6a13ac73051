package dto

import "time"

// CreateUserRequest entrada del CRUD admin de usuarios (password en claro, se hashea en el caso de uso).
type CreateUserRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
	Adresse  string `json:"adresse" form:"adresse"`
}

// UpdateUserRequest actualización parcial de un usuario; password opcional.
type UpdateUserRequest struct {
	Name     *string `json:"name" form:"name"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
	Adresse  *string `json:"adresse" form:"adresse"`
}

// UserResponse salida de un usuario (sin hash de password). Image es URL absoluta.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Adresse   string    `json:"adresse"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest registro público: siempre crea un manager.
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Adresse  string `json:"adresse" form:"adresse"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthResponse token JWT más el usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
