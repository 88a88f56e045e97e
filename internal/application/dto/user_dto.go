package dto

import "time"

// RegisterRequest entrada para registro: la sede se resuelve por nombre.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	OfficeName  string `json:"nomeSede" validate:"required"`
	DisplayName string `json:"operatore" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	OfficeName  string    `json:"nomeSede"`
	DisplayName string    `json:"operatore"`
	Role        string    `json:"role"`
	SedeID      string    `json:"sedeId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterResponse usuario creado y si la sede es nueva.
type RegisterResponse struct {
	User          UserResponse `json:"user"`
	OfficeCreated bool         `json:"sedeCreata"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT, usuario y resultado del escaneo de vencimientos.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // segundos
	User      UserResponse `json:"user"`
	Reminders int          `json:"nuoviPromemoria"`
}

// PasswordResetRequest solicitud de enlace de recuperación.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm nueva credencial con el token recibido por correo.
type PasswordResetConfirm struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// SupportRequest solicitud de asistencia enviada al buzón de soporte.
type SupportRequest struct {
	Name    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Sede    string `json:"sede"`
	Subject string `json:"oggetto" validate:"required"`
	Message string `json:"messaggio" validate:"required"`
}
