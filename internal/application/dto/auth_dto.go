package dto

import "time"

// RegisterRequest datos de registro de una cuenta nueva.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse representación pública del usuario.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	CompanyName    string    `json:"companyName"`
	Role           string    `json:"role"`
	OnboardingSeen bool      `json:"onboardingSeen"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest actualización parcial del perfil.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
}
